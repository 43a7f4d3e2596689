package schedule

type UpsertSlotInput struct {
	EmployeeID     uint64
	WeekStartDate  string
	DayOfWeek      int
	ShiftStartTime string
	ShiftEndTime   string
	ShiftType      string
}

type EntryDTO struct {
	EmployeeID     uint64 `json:"employee_id"`
	WeekStartDate  string `json:"week_start_date"`
	DayOfWeek      int    `json:"day_of_week"`
	ShiftStartTime string `json:"shift_start_time,omitempty"`
	ShiftEndTime   string `json:"shift_end_time,omitempty"`
	ShiftType      string `json:"shift_type,omitempty"`
	WeekOffset     int    `json:"week_offset"`
}

// WeekEntryDTO is one schedule-grid row with the employee named.
type WeekEntryDTO struct {
	EntryDTO
	FullName string `json:"full_name"`
}

type ExpandedDTO struct {
	PatternWeeks int        `json:"pattern_weeks"`
	Entries      []EntryDTO `json:"schedules"`
}

type WorkDayDTO struct {
	DayOfWeek  int     `json:"day_of_week"`
	WeekOffset int     `json:"week_offset"`
	ShiftType  string  `json:"shift_type,omitempty"`
	StartTime  string  `json:"start_time,omitempty"`
	EndTime    string  `json:"end_time,omitempty"`
	Hours      float64 `json:"hours"`
}

// WorkPatternDTO with HasPattern false is a valid empty result, not a fault.
type WorkPatternDTO struct {
	HasPattern   bool         `json:"has_pattern"`
	PatternWeeks int          `json:"pattern_weeks"`
	WorkDays     []WorkDayDTO `json:"work_days"`
}
