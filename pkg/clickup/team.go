package clickup

// Team is a ClickUp workspace, the root of the hierarchy.
type Team struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Color   string       `json:"color,omitempty"`
	Avatar  *string      `json:"avatar,omitempty"`
	Members []TeamMember `json:"members"`
	Extra   Extra        `json:"-"`
	seen    memberSet
}

// TeamMember wraps the user record of a team member.
type TeamMember struct {
	User  User  `json:"user"`
	Extra Extra `json:"-"`
	seen  memberSet
}

// User is a ClickUp user as embedded in team membership.
type User struct {
	ID             int64   `json:"id"`
	Username       *string `json:"username"`
	Email          string  `json:"email,omitempty"`
	Color          *string `json:"color,omitempty"`
	Initials       string  `json:"initials,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
	Role           *int    `json:"role,omitempty"`
	Extra          Extra   `json:"-"`
	seen           memberSet
}

// RecordID implements Record.
func (t Team) RecordID() string { return t.Extra.text("id", t.ID) }

// RecordName implements Record.
func (t Team) RecordName() string { return t.Extra.text("name", t.Name) }

// UnmarshalJSON decodes t leniently, keeping unknown members in Extra.
func (t *Team) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, t, &t.Extra, &t.seen)
}

// MarshalJSON encodes t including its Extra members.
func (t Team) MarshalJSON() ([]byte, error) {
	type plain Team

	return marshalRecord(plain(t), t.Extra, t.seen)
}

// UnmarshalJSON decodes m leniently, keeping unknown members in Extra.
func (m *TeamMember) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, m, &m.Extra, &m.seen)
}

// MarshalJSON encodes m including its Extra members.
func (m TeamMember) MarshalJSON() ([]byte, error) {
	type plain TeamMember

	return marshalRecord(plain(m), m.Extra, m.seen)
}

// UnmarshalJSON decodes u leniently, keeping unknown members in Extra.
func (u *User) UnmarshalJSON(data []byte) error {
	return unmarshalRecord(data, u, &u.Extra, &u.seen)
}

// MarshalJSON encodes u including its Extra members.
func (u User) MarshalJSON() ([]byte, error) {
	type plain User

	return marshalRecord(plain(u), u.Extra, u.seen)
}

// Strict shapes for Team and its members.
var (
	UserShape = Object("User",
		Field("id", Number()),
		Field("username", Nullable(String())),
		Field("email", Optional(String())),
		Field("color", Optional(Nullable(String()))),
		Field("initials", Optional(String())),
		Field("profilePicture", Optional(Nullable(String()))),
		Field("role", Optional(Number())),
	)

	TeamMemberShape = Object("TeamMember",
		Field("user", UserShape),
	)

	TeamShape = Object("Team",
		Field("id", String()),
		Field("name", String()),
		Field("color", Optional(String())),
		Field("avatar", Optional(Nullable(String()))),
		Field("members", ArrayOf(TeamMemberShape)),
	)
)

// ParseTeam strictly validates data and decodes it into a Team.
func ParseTeam(data []byte) (*Team, error) {
	return parseStrict[Team](data, TeamShape)
}

// SerializeTeam encodes t and validates the result against TeamShape.
func SerializeTeam(t *Team) ([]byte, error) {
	return serializeStrict(t, TeamShape)
}
