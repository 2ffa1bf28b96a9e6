package domain

// IndustryCompanyRow is one row of industries LEFT JOIN companies_industries.
// CompanyCode is nil when the industry has no associations.
type IndustryCompanyRow struct {
	Code        string
	Industry    string
	CompanyCode *string
}

// IndustryGrouper folds industry join rows into one entry per industry.
// Industries keep first-seen order and company codes keep row order.
// A nil company code contributes the industry but no company.
type IndustryGrouper struct {
	index  map[string]int
	groups []IndustryWithCompanies
}

// NewIndustryGrouper returns an empty grouper.
func NewIndustryGrouper() *IndustryGrouper {
	return &IndustryGrouper{index: make(map[string]int)}
}

// Add folds one row into the result.
func (g *IndustryGrouper) Add(row IndustryCompanyRow) {
	i, ok := g.index[row.Code]
	if !ok {
		i = len(g.groups)
		g.index[row.Code] = i
		g.groups = append(g.groups, IndustryWithCompanies{
			Industry:     Industry{Code: row.Code, Industry: row.Industry},
			CompanyCodes: []string{},
		})
	}
	if row.CompanyCode != nil {
		g.groups[i].CompanyCodes = append(g.groups[i].CompanyCodes, *row.CompanyCode)
	}
}

// Result returns the grouped industries. It is never nil.
func (g *IndustryGrouper) Result() []IndustryWithCompanies {
	if g.groups == nil {
		return []IndustryWithCompanies{}
	}
	return g.groups
}

// GroupIndustryRows folds a complete row set.
func GroupIndustryRows(rows []IndustryCompanyRow) []IndustryWithCompanies {
	g := NewIndustryGrouper()
	for _, row := range rows {
		g.Add(row)
	}
	return g.Result()
}

// CollectIndustryCodes reduces the industry column of a company's left join
// to distinct codes in first-seen order. NULLs are dropped, so a company
// without industries yields an empty, non-nil slice.
func CollectIndustryCodes(codes []*string) []string {
	out := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		if code == nil {
			continue
		}
		if _, dup := seen[*code]; dup {
			continue
		}
		seen[*code] = struct{}{}
		out = append(out, *code)
	}
	return out
}
