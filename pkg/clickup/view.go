package clickup

// View is a saved presentation of tasks attached to a team, space, folder
// or list.
type View struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Parent      ViewParent   `json:"parent"`
	Grouping    Divide       `json:"grouping"`
	Divide      Divide       `json:"divide"`
	Sorting     FieldList    `json:"sorting"`
	Filters     Filters      `json:"filters"`
	Columns     FieldList    `json:"columns"`
	TeamSidebar TeamSidebar  `json:"team_sidebar"`
	Settings    ViewSettings `json:"settings"`
	Extra       Extra        `json:"-"`
	seen        memberSet
}

// ViewParent identifies what a view is attached to. Type is ClickUp's
// numeric parent kind.
type ViewParent struct {
	ID    string `json:"id"`
	Type  int    `json:"type"`
	Extra Extra  `json:"-"`
	seen  memberSet
}

// Divide is the grouping or division configuration of a view.
type Divide struct {
	Field     *string  `json:"field"`
	Dir       *float64 `json:"dir"`
	Collapsed []any    `json:"collapsed"`
	Ignore    *bool    `json:"ignore,omitempty"`
	Extra     Extra    `json:"-"`
	seen      memberSet
}

// FieldList is the sorting or column configuration of a view.
type FieldList struct {
	Fields []any `json:"fields"`
	Extra  Extra `json:"-"`
	seen   memberSet
}

// Filters is the filter configuration of a view.
type Filters struct {
	Op         string `json:"op"`
	Fields     []any  `json:"fields"`
	Search     string `json:"search"`
	ShowClosed bool   `json:"show_closed"`
	Extra      Extra  `json:"-"`
	seen       memberSet
}

// TeamSidebar is the sidebar configuration of a team-level view.
type TeamSidebar struct {
	Assignees        []any `json:"assignees"`
	AssignedComments bool  `json:"assigned_comments"`
	UnassignedTasks  bool  `json:"unassigned_tasks"`
	Extra            Extra `json:"-"`
	seen             memberSet
}

// ViewSettings holds the display toggles of a view.
type ViewSettings struct {
	ShowTaskLocations      bool  `json:"show_task_locations"`
	ShowSubtasks           int   `json:"show_subtasks"`
	ShowSubtaskParentNames bool  `json:"show_subtask_parent_names"`
	ShowClosedSubtasks     bool  `json:"show_closed_subtasks"`
	ShowAssignees          bool  `json:"show_assignees"`
	ShowImages             bool  `json:"show_images"`
	CollapseEmptyColumns   *bool `json:"collapse_empty_columns"`
	MeComments             bool  `json:"me_comments"`
	MeSubtasks             bool  `json:"me_subtasks"`
	MeChecklists           bool  `json:"me_checklists"`
	Extra                  Extra `json:"-"`
	seen                   memberSet
}

// RecordID implements Record.
func (v View) RecordID() string { return v.Extra.text("id", v.ID) }

// RecordName implements Record.
func (v View) RecordName() string { return v.Extra.text("name", v.Name) }

// UnmarshalJSON decodes v leniently, keeping unknown members in Extra.
func (v *View) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, v, &v.Extra, &v.seen)
}

// MarshalJSON encodes v including its Extra members.
func (v View) MarshalJSON() ([]byte, error) {
	type plain View

	return marshalRecord(plain(v), v.Extra, v.seen)
}

// UnmarshalJSON decodes p leniently, keeping unknown members in Extra.
func (p *ViewParent) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, p, &p.Extra, &p.seen)
}

// MarshalJSON encodes p including its Extra members.
func (p ViewParent) MarshalJSON() ([]byte, error) {
	type plain ViewParent

	return marshalRecord(plain(p), p.Extra, p.seen)
}

// UnmarshalJSON decodes d leniently, keeping unknown members in Extra.
func (d *Divide) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, d, &d.Extra, &d.seen)
}

// MarshalJSON encodes d including its Extra members.
func (d Divide) MarshalJSON() ([]byte, error) {
	type plain Divide

	return marshalRecord(plain(d), d.Extra, d.seen)
}

// UnmarshalJSON decodes l leniently, keeping unknown members in Extra.
func (l *FieldList) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, l, &l.Extra, &l.seen)
}

// MarshalJSON encodes l including its Extra members.
func (l FieldList) MarshalJSON() ([]byte, error) {
	type plain FieldList

	return marshalRecord(plain(l), l.Extra, l.seen)
}

// UnmarshalJSON decodes f leniently, keeping unknown members in Extra.
func (f *Filters) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, f, &f.Extra, &f.seen)
}

// MarshalJSON encodes f including its Extra members.
func (f Filters) MarshalJSON() ([]byte, error) {
	type plain Filters

	return marshalRecord(plain(f), f.Extra, f.seen)
}

// UnmarshalJSON decodes s leniently, keeping unknown members in Extra.
func (s *TeamSidebar) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, s, &s.Extra, &s.seen)
}

// MarshalJSON encodes s including its Extra members.
func (s TeamSidebar) MarshalJSON() ([]byte, error) {
	type plain TeamSidebar

	return marshalRecord(plain(s), s.Extra, s.seen)
}

// UnmarshalJSON decodes s leniently, keeping unknown members in Extra.
func (s *ViewSettings) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, s, &s.Extra, &s.seen)
}

// MarshalJSON encodes s including its Extra members.
func (s ViewSettings) MarshalJSON() ([]byte, error) {
	type plain ViewSettings

	return marshalRecord(plain(s), s.Extra, s.seen)
}

// Strict shapes for View and its members.
var (
	ViewParentShape = Object("ViewParent",
		Field("id", String()),
		Field("type", Number()),
	)

	DivideShape = Object("Divide",
		Field("field", Union(Null(), String())),
		Field("dir", Union(Null(), Number())),
		Field("collapsed", ArrayOf(Any())),
		Field("ignore", Optional(Bool())),
	)

	FieldListShape = Object("FieldList",
		Field("fields", ArrayOf(Any())),
	)

	FiltersShape = Object("Filters",
		Field("op", String()),
		Field("fields", ArrayOf(Any())),
		Field("search", String()),
		Field("show_closed", Bool()),
	)

	TeamSidebarShape = Object("TeamSidebar",
		Field("assignees", ArrayOf(Any())),
		Field("assigned_comments", Bool()),
		Field("unassigned_tasks", Bool()),
	)

	ViewSettingsShape = Object("ViewSettings",
		Field("show_task_locations", Bool()),
		Field("show_subtasks", Number()),
		Field("show_subtask_parent_names", Bool()),
		Field("show_closed_subtasks", Bool()),
		Field("show_assignees", Bool()),
		Field("show_images", Bool()),
		Field("collapse_empty_columns", Union(Null(), Bool())),
		Field("me_comments", Bool()),
		Field("me_subtasks", Bool()),
		Field("me_checklists", Bool()),
	)

	ViewShape = Object("View",
		Field("id", String()),
		Field("name", String()),
		Field("type", String()),
		Field("parent", ViewParentShape),
		Field("grouping", DivideShape),
		Field("divide", DivideShape),
		Field("sorting", FieldListShape),
		Field("filters", FiltersShape),
		Field("columns", FieldListShape),
		Field("team_sidebar", TeamSidebarShape),
		Field("settings", ViewSettingsShape),
	)
)

// ParseView strictly validates data and decodes it into a View.
func ParseView(data []byte) (*View, error) {
	return parseStrict[View](data, ViewShape)
}

// SerializeView encodes v and validates the result against ViewShape.
func SerializeView(v *View) ([]byte, error) {
	return serializeStrict(v, ViewShape)
}
