package clickup_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/fivetwenty-io/clickup-client/pkg/clickup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform_Union(t *testing.T) {
	t.Parallel()

	shape := clickup.Union(clickup.Null(), clickup.Number())

	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{name: "null", value: nil},
		{name: "integer", value: json.Number("1")},
		{name: "negative float", value: json.Number("-2.5")},
		{name: "float64", value: 3.0},
		{name: "string", value: "x", wantErr: true},
		{name: "bool", value: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := clickup.Transform(tt.value, shape)
			if tt.wantErr {
				var validationErr *clickup.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "null | number", validationErr.Expected)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.value, out)
		})
	}
}

func TestTransform_UnionFirstMatchWins(t *testing.T) {
	t.Parallel()

	shape := clickup.Union(clickup.Any(), clickup.String())

	out, err := clickup.Transform(json.Number("5"), shape)
	require.NoError(t, err)
	assert.Equal(t, json.Number("5"), out)
}

func TestTransform_Primitives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		shape   *clickup.Shape
		value   any
		wantErr bool
	}{
		{name: "string ok", shape: clickup.String(), value: "a"},
		{name: "string rejects number", shape: clickup.String(), value: json.Number("1"), wantErr: true},
		{name: "bool ok", shape: clickup.Bool(), value: false},
		{name: "bool rejects string", shape: clickup.Bool(), value: "false", wantErr: true},
		{name: "null rejects empty string", shape: clickup.Null(), value: "", wantErr: true},
		{name: "any accepts object", shape: clickup.Any(), value: map[string]any{"a": "b"}},
		{name: "array ok", shape: clickup.ArrayOf(clickup.String()), value: []any{"a", "b"}},
		{name: "array rejects object", shape: clickup.ArrayOf(clickup.String()), value: map[string]any{}, wantErr: true},
		{name: "object rejects array", shape: clickup.Object("Thing"), value: []any{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := clickup.Transform(tt.value, tt.shape)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestTransform_ObjectPassThrough(t *testing.T) {
	t.Parallel()

	shape := clickup.Object("Thing",
		clickup.Field("id", clickup.String()),
		clickup.Field("note", clickup.Optional(clickup.String())),
	)

	out, err := clickup.Transform(map[string]any{
		"id":    "1",
		"extra": []any{json.Number("1"), "two"},
	}, shape)
	require.NoError(t, err)

	obj, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1", obj["id"])
	assert.Equal(t, []any{json.Number("1"), "two"}, obj["extra"])
	assert.NotContains(t, obj, "note")
}

func TestTransform_Undefined(t *testing.T) {
	t.Parallel()

	required := clickup.Object("Thing", clickup.Field("id", clickup.String()))
	optional := clickup.Object("Thing", clickup.Field("id", clickup.Optional(clickup.String())))

	_, err := clickup.Transform(map[string]any{}, optional)
	require.NoError(t, err)

	_, err = clickup.Transform(map[string]any{}, required)

	var validationErr *clickup.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "undefined", validationErr.Actual)

	_, err = clickup.Transform(map[string]any{"id": nil}, optional)
	require.Error(t, err, "null is not undefined")
}

func TestTransform_ErrorPath(t *testing.T) {
	t.Parallel()

	err := clickup.ValidateJSON(
		[]byte(`{"id":"1","name":"A","members":[{"user":{"id":"x","username":null}}]}`),
		clickup.TeamShape,
	)

	var validationErr *clickup.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "id", validationErr.Key)
	assert.Equal(t, "$.members[0].user.id", validationErr.Path)
	assert.Equal(t, "number", validationErr.Expected)
	assert.Equal(t, `"x"`, validationErr.Actual)
	assert.Equal(t,
		`invalid value for key "id" at $.members[0].user.id: expected number, got "x"`,
		validationErr.Error(),
	)
}

func TestValidateEnvelope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "empty collection", body: `{"teams":[]}`},
		{name: "missing key", body: `{}`, wantErr: true},
		{name: "not an array", body: `{"teams":{}}`, wantErr: true},
		{name: "bad element", body: `{"teams":[{"id":"1"}]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := clickup.ValidateEnvelope([]byte(tt.body), "teams", clickup.TeamShape)
			if tt.wantErr {
				var validationErr *clickup.ValidationError
				assert.ErrorAs(t, err, &validationErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestValidateJSON_TrailingData(t *testing.T) {
	t.Parallel()

	for _, doc := range []string{`{} {}`, `{}]`, `{} }`, `{"id":"1"}]`, `[1]]`} {
		err := clickup.ValidateJSON([]byte(doc), clickup.Any())

		var parseErr *clickup.ParseError
		require.ErrorAs(t, err, &parseErr, doc)
		assert.True(t, errors.Is(err, clickup.ErrTrailingData), doc)
	}

	require.NoError(t, clickup.ValidateJSON([]byte("{}\n\t "), clickup.Any()))
}

func TestParse_RejectsTrailingCloser(t *testing.T) {
	t.Parallel()

	_, err := clickup.ParseTeam([]byte(`{"id":"1","name":"A","members":[]} }`))

	var parseErr *clickup.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "Team", parseErr.Resource)
	assert.ErrorIs(t, err, clickup.ErrTrailingData)
}

func TestShape_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "undefined | null | string", clickup.Optional(clickup.Nullable(clickup.String())).String())
	assert.Equal(t, "array<Status>", clickup.ArrayOf(clickup.StatusShape).String())
	assert.Equal(t, "object", clickup.Object("").String())
}
