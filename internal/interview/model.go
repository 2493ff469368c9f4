package interview

// CompanyInfo is approximate market data about the company.
type CompanyInfo struct {
	EmployeeCount   string `json:"employeeCount"`
	Branches        string `json:"branches"`
	SalaryPackage   string `json:"salaryPackage"`
	HikeTrends      string `json:"hikeTrends"`
	GrowthProspects string `json:"growthProspects"`
}

// Insight is the interview preparation result for a company and role.
type Insight struct {
	CompanyInfo CompanyInfo `json:"companyInfo"`
	Questions   []string    `json:"questions"`
	Tips        []string    `json:"tips"`
}
