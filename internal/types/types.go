package types

type StrategyRequest struct {
	Domain       Text `json:"domain"`
	CompanyType  Text `json:"companyType"`
	Goal         Text `json:"goal"`
	CustomReason Text `json:"customReason"`
	CSVData      Text `json:"csvData"`
}

type RiskRequest struct {
	RiskType        Text `json:"riskType"`
	RiskScenario    Text `json:"riskScenario"`
	RiskDescription Text `json:"riskDescription"`
}

type MarketRequest struct {
	Industry Text `json:"industry"`
	Product  Text `json:"product"`
	Query    Text `json:"query"`
}

type Activity struct {
	Description Text `json:"description"`
	Timestamp   Text `json:"timestamp"`
}

type ReportsRequest struct {
	Email      Text       `json:"email"`
	Activities []Activity `json:"activities"`
}

type StrategyResponse struct {
	Success    bool     `json:"success"`
	Strategies []string `json:"strategies"`
}

type RiskResponse struct {
	Success     bool     `json:"success"`
	Risks       []string `json:"risks"`
	Mitigations []string `json:"mitigations"`
}

type MarketResponse struct {
	Success     bool     `json:"success"`
	Insights    []string `json:"insights"`
	Competitors []string `json:"competitors"`
}

// Report is one row of the generated reports table.
type Report struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Date   string `json:"date"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

type ReportsResponse struct {
	Success bool     `json:"success"`
	Reports []Report `json:"reports"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
