package teacher

type WorkingHours struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type CreateTeacherRequest struct {
	Name          string        `json:"name" binding:"required"`
	Username      string        `json:"username"`
	GrNumber      string        `json:"grNumber"`
	Email         string        `json:"email" binding:"omitempty,email"`
	Password      string        `json:"password" binding:"required,min=6"`
	PhoneNumber   string        `json:"phoneNumber"`
	ContactNumber string        `json:"contactNumber"`
	MonthlySalary *float64      `json:"monthlySalary"`
	Designation   string        `json:"designation"`
	JamiaType     string        `json:"jamiaType"`
	WorkingHours  *WorkingHours `json:"workingHours"`
	JoiningDate   string        `json:"joiningDate"`
	Active        *bool         `json:"active"`
}

type UpdateTeacherRequest struct {
	Name          string        `json:"name" binding:"required"`
	Username      string        `json:"username"`
	GrNumber      string        `json:"grNumber"`
	Email         string        `json:"email" binding:"omitempty,email"`
	Password      string        `json:"password" binding:"omitempty,min=6"`
	PhoneNumber   string        `json:"phoneNumber"`
	ContactNumber string        `json:"contactNumber"`
	MonthlySalary *float64      `json:"monthlySalary"`
	Designation   string        `json:"designation"`
	JamiaType     string        `json:"jamiaType"`
	WorkingHours  *WorkingHours `json:"workingHours"`
	JoiningDate   string        `json:"joiningDate"`
	Active        *bool         `json:"active"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

type TeacherResponse struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Username      string       `json:"username,omitempty"`
	GrNumber      string       `json:"grNumber,omitempty"`
	Email         string       `json:"email,omitempty"`
	PhoneNumber   string       `json:"phoneNumber,omitempty"`
	ContactNumber string       `json:"contactNumber,omitempty"`
	MonthlySalary float64      `json:"monthlySalary"`
	Designation   string       `json:"designation,omitempty"`
	JamiaType     string       `json:"jamiaType,omitempty"`
	WorkingHours  WorkingHours `json:"workingHours"`
	Active        bool         `json:"active"`
	JoiningDate   string       `json:"joiningDate"`
}

// TeacherOption is the trimmed projection the attendance form needs.
type TeacherOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	GrNumber    string `json:"grNumber,omitempty"`
	Designation string `json:"designation,omitempty"`
}
