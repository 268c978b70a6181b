package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// --- Departments ---

type createDepartmentRequest struct {
	ID   string `json:"id"   validate:"required,max=16"`
	Name string `json:"name" validate:"required,max=64"`
}

type departmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// --- Employees ---

// hireRequest hires one employee. Rate is the annual salary for full_time
// hires and the hourly rate for part_time hires.
type hireRequest struct {
	Type         string  `json:"type"          validate:"required,oneof=full_time part_time"`
	FirstName    string  `json:"first_name"    validate:"required,max=64"`
	LastName     string  `json:"last_name"     validate:"required,max=64"`
	DepartmentID string  `json:"department_id" validate:"required"`
	Rate         float64 `json:"rate"`
}

type employeeLinks struct {
	Self  string `json:"self"`
	Hours string `json:"hours,omitempty"`
}

type employeeResponse struct {
	ID           string              `json:"id"`
	FirstName    string              `json:"first_name"`
	LastName     string              `json:"last_name"`
	FullName     string              `json:"full_name"`
	Type         string              `json:"type"`
	Department   *departmentResponse `json:"department,omitempty"`
	AnnualSalary *string             `json:"annual_salary,omitempty"`
	AnnualBonus  *string             `json:"annual_bonus,omitempty"`
	HourlyRate   *string             `json:"hourly_rate,omitempty"`
	HoursWorked  *int                `json:"hours_worked,omitempty"`
	WeeklyPay    string              `json:"weekly_pay"`
	Links        employeeLinks       `json:"_links"`
}

type hireResponse struct {
	Message  string           `json:"message"`
	Employee employeeResponse `json:"employee"`
}

// --- Hours ---

type setHoursRequest struct {
	Hours *int `json:"hours" validate:"required,gte=0"`
}

// batchHoursRequest maps employee IDs to hours worked this period. Every
// part-time employee must be present; a missing one cancels the run.
type batchHoursRequest struct {
	Hours map[string]int `json:"hours" validate:"required,dive,gte=0"`
}

type hoursUpdateResponse struct {
	Updated    int `json:"updated"`
	PartTimers int `json:"part_timers"`
}

// --- Reports ---

type payrollLineResponse struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Type       string `json:"type"`
	Department string `json:"department"`
	WeeklyPay  string `json:"weekly_pay"`
}

type payrollReportResponse struct {
	Lines []payrollLineResponse `json:"lines"`
	Total string                `json:"total"`
}

type departmentSectionResponse struct {
	Department departmentResponse    `json:"department"`
	Lines      []payrollLineResponse `json:"lines"`
	Subtotal   string                `json:"subtotal"`
	Empty      bool                  `json:"empty"`
}

type departmentPayrollResponse struct {
	Sections   []departmentSectionResponse `json:"sections"`
	GrandTotal string                      `json:"grand_total"`
}

type endOfYearEntryResponse struct {
	Kind       string  `json:"kind"`
	EmployeeID string  `json:"employee_id"`
	FullName   string  `json:"full_name"`
	Department string  `json:"department"`
	Bonus      *string `json:"bonus,omitempty"`
	Notice     string  `json:"notice,omitempty"`
}

type endOfYearResponse struct {
	Entries []endOfYearEntryResponse `json:"entries"`
}
