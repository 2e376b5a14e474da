package clickup

// Space belongs to one team, referenced by id only.
type Space struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Private           bool     `json:"private"`
	Statuses          []Status `json:"statuses"`
	MultipleAssignees bool     `json:"multiple_assignees"`
	Features          Features `json:"features"`
	Extra             Extra    `json:"-"`
	seen              memberSet
}

// Features is the space feature-flag bundle.
type Features struct {
	DueDates          DueDates      `json:"due_dates"`
	TimeTracking      FeatureToggle `json:"time_tracking"`
	Tags              FeatureToggle `json:"tags"`
	TimeEstimates     FeatureToggle `json:"time_estimates"`
	Checklists        FeatureToggle `json:"checklists"`
	CustomFields      FeatureToggle `json:"custom_fields"`
	RemapDependencies FeatureToggle `json:"remap_dependencies"`
	DependencyWarning FeatureToggle `json:"dependency_warning"`
	Portfolios        FeatureToggle `json:"portfolios"`
	Extra             Extra         `json:"-"`
	seen              memberSet
}

// FeatureToggle is a feature that is only switched on or off.
type FeatureToggle struct {
	Enabled bool  `json:"enabled"`
	Extra   Extra `json:"-"`
	seen    memberSet
}

// DueDates configures due dates for a space.
type DueDates struct {
	Enabled            bool  `json:"enabled"`
	StartDate          bool  `json:"start_date"`
	RemapDueDates      bool  `json:"remap_due_dates"`
	RemapClosedDueDate bool  `json:"remap_closed_due_date"`
	Extra              Extra `json:"-"`
	seen               memberSet
}

// RecordID implements Record.
func (s Space) RecordID() string { return s.Extra.text("id", s.ID) }

// RecordName implements Record.
func (s Space) RecordName() string { return s.Extra.text("name", s.Name) }

// UnmarshalJSON decodes s leniently, keeping unknown members in Extra.
func (s *Space) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, s, &s.Extra, &s.seen)
}

// MarshalJSON encodes s including its Extra members.
func (s Space) MarshalJSON() ([]byte, error) {
	type plain Space

	return marshalRecord(plain(s), s.Extra, s.seen)
}

// UnmarshalJSON decodes f leniently, keeping unknown members in Extra.
func (f *Features) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, f, &f.Extra, &f.seen)
}

// MarshalJSON encodes f including its Extra members.
func (f Features) MarshalJSON() ([]byte, error) {
	type plain Features

	return marshalRecord(plain(f), f.Extra, f.seen)
}

// UnmarshalJSON decodes f leniently, keeping unknown members in Extra.
func (f *FeatureToggle) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, f, &f.Extra, &f.seen)
}

// MarshalJSON encodes f including its Extra members.
func (f FeatureToggle) MarshalJSON() ([]byte, error) {
	type plain FeatureToggle

	return marshalRecord(plain(f), f.Extra, f.seen)
}

// UnmarshalJSON decodes d leniently, keeping unknown members in Extra.
func (d *DueDates) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, d, &d.Extra, &d.seen)
}

// MarshalJSON encodes d including its Extra members.
func (d DueDates) MarshalJSON() ([]byte, error) {
	type plain DueDates

	return marshalRecord(plain(d), d.Extra, d.seen)
}

// Strict shapes for Space and its members.
var (
	FeatureToggleShape = Object("FeatureToggle",
		Field("enabled", Bool()),
	)

	DueDatesShape = Object("DueDates",
		Field("enabled", Bool()),
		Field("start_date", Bool()),
		Field("remap_due_dates", Bool()),
		Field("remap_closed_due_date", Bool()),
	)

	FeaturesShape = Object("Features",
		Field("due_dates", DueDatesShape),
		Field("time_tracking", FeatureToggleShape),
		Field("tags", FeatureToggleShape),
		Field("time_estimates", FeatureToggleShape),
		Field("checklists", FeatureToggleShape),
		Field("custom_fields", FeatureToggleShape),
		Field("remap_dependencies", FeatureToggleShape),
		Field("dependency_warning", FeatureToggleShape),
		Field("portfolios", FeatureToggleShape),
	)

	SpaceShape = Object("Space",
		Field("id", String()),
		Field("name", String()),
		Field("private", Bool()),
		Field("statuses", ArrayOf(StatusShape)),
		Field("multiple_assignees", Bool()),
		Field("features", FeaturesShape),
	)
)

// ParseSpace strictly validates data and decodes it into a Space.
func ParseSpace(data []byte) (*Space, error) {
	return parseStrict[Space](data, SpaceShape)
}

// SerializeSpace encodes s and validates the result against SpaceShape.
func SerializeSpace(s *Space) ([]byte, error) {
	return serializeStrict(s, SpaceShape)
}
