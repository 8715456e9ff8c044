package employee

type EmployeeResponse struct {
	EmployeeID      int64   `json:"employee_id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	BirthDate       string  `json:"birth_date"`
	NetAnnualIncome float64 `json:"net_annual_income"`
}
