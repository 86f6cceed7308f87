package domain

// The HR practice schema: seven entities forming a hierarchy
// (regions -> countries -> locations -> departments) plus jobs,
// employees and their dependents. Employees carry an optional
// self-reference to their manager.

// Region represents the regions table
type Region struct {
	RegionID   int    `db:"region_id" yaml:"region_id"`
	RegionName string `db:"region_name" yaml:"region_name"`
}

// Country represents the countries table. The primary key is a
// two-letter text code, not an integer.
type Country struct {
	CountryID   string `db:"country_id" yaml:"country_id"`
	CountryName string `db:"country_name" yaml:"country_name"`
	RegionID    int    `db:"region_id" yaml:"region_id"`
}

// Location represents the locations table
type Location struct {
	LocationID    int    `db:"location_id" yaml:"location_id"`
	StreetAddress string `db:"street_address" yaml:"street_address"`
	PostalCode    string `db:"postal_code" yaml:"postal_code"`
	City          string `db:"city" yaml:"city"`
	StateProvince string `db:"state_province" yaml:"state_province"`
	CountryID     string `db:"country_id" yaml:"country_id"`
}

// Department represents the departments table
type Department struct {
	DepartmentID   int    `db:"department_id" yaml:"department_id"`
	DepartmentName string `db:"department_name" yaml:"department_name"`
	LocationID     int    `db:"location_id" yaml:"location_id"`
}

// Job represents the jobs table. The schema does not constrain the
// salary band; MinSalary <= MaxSalary is a loader-enforced rule.
type Job struct {
	JobID     int     `db:"job_id" yaml:"job_id"`
	JobTitle  string  `db:"job_title" yaml:"job_title"`
	MinSalary float64 `db:"min_salary" yaml:"min_salary"`
	MaxSalary float64 `db:"max_salary" yaml:"max_salary"`
}

// Employee represents the employees table. ManagerID is nil for root
// employees (the president has no manager). Hire dates are stored as
// ISO text (YYYY-MM-DD) so the lesson queries can use SQL date
// functions directly.
type Employee struct {
	EmployeeID   int     `db:"employee_id" yaml:"employee_id"`
	FirstName    string  `db:"first_name" yaml:"first_name"`
	LastName     string  `db:"last_name" yaml:"last_name"`
	Email        string  `db:"email" yaml:"email"`
	PhoneNumber  string  `db:"phone_number" yaml:"phone_number"`
	HireDate     string  `db:"hire_date" yaml:"hire_date"`
	JobID        int     `db:"job_id" yaml:"job_id"`
	Salary       float64 `db:"salary" yaml:"salary"`
	ManagerID    *int    `db:"manager_id" yaml:"manager_id"`
	DepartmentID int     `db:"department_id" yaml:"department_id"`
}

// Dependent represents the dependents table
type Dependent struct {
	DependentID  int    `db:"dependent_id" yaml:"dependent_id"`
	FirstName    string `db:"first_name" yaml:"first_name"`
	LastName     string `db:"last_name" yaml:"last_name"`
	Relationship string `db:"relationship" yaml:"relationship"`
	EmployeeID   int    `db:"employee_id" yaml:"employee_id"`
}
