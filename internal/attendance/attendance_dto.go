package attendance

// ReconcileRequest accepts both historical field-naming schemes. Alias
// resolution happens once, in resolveAliases; nothing past the DTO
// ever sees the legacy names.
type ReconcileRequest struct {
	Teacher   string `json:"teacher"`
	TeacherID string `json:"teacherId"`

	Date   string `json:"date"`
	Status string `json:"status"`

	CheckIn  *string `json:"checkIn"`
	TimeIn   *string `json:"timeIn"`
	CheckOut *string `json:"checkOut"`
	TimeOut  *string `json:"timeOut"`

	Comment  *string `json:"comment"`
	Comments *string `json:"comments"`
	Notes    *string `json:"notes"`
}

// canonicalInput is the de-aliased submission the service works with.
// Nil pointers mean "not provided": merges must preserve stored values.
type canonicalInput struct {
	TeacherRef string
	Date       string
	Status     string
	TimeIn     *string
	TimeOut    *string
	Comment    *string
}

func resolveAliases(req ReconcileRequest) canonicalInput {
	in := canonicalInput{
		Date:   req.Date,
		Status: req.Status,
	}

	in.TeacherRef = req.Teacher
	if in.TeacherRef == "" {
		in.TeacherRef = req.TeacherID
	}

	// Newer-named pair wins when both schemes are set.
	in.TimeIn = req.TimeIn
	if in.TimeIn == nil {
		in.TimeIn = req.CheckIn
	}
	in.TimeOut = req.TimeOut
	if in.TimeOut == nil {
		in.TimeOut = req.CheckOut
	}

	in.Comment = req.Comment
	if in.Comment == nil {
		in.Comment = req.Comments
	}
	if in.Comment == nil {
		in.Comment = req.Notes
	}

	return in
}

// AttendanceResponse mirrors every alias pair with the synchronized
// value so both generations of callers read the same record.
type AttendanceResponse struct {
	ID        string `json:"id"`
	Teacher   string `json:"teacher"`
	TeacherID string `json:"teacherId"`
	Date      string `json:"date"`
	Status    string `json:"status"`

	CheckIn  *string `json:"checkIn"`
	TimeIn   *string `json:"timeIn"`
	CheckOut *string `json:"checkOut"`
	TimeOut  *string `json:"timeOut"`

	WorkHours       float64 `json:"workHours"`
	SalaryDeduction float64 `json:"salaryDeduction"`

	Comment  *string `json:"comment"`
	Comments *string `json:"comments"`
	Notes    *string `json:"notes"`

	IsLate     bool `json:"isLate"`
	IsShortDay bool `json:"isShortDay"`
}
