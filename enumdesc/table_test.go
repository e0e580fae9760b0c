package enumdesc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleMembers() []Member[int] {
	return []Member[int]{
		{Name: "ZERO", Value: 0, Descriptions: []string{"ZERO"}},
		{Name: "ONE", Value: 1, Descriptions: []string{"One \"1\""}},
		{Name: "SAME_AS_ONE", Value: 1, Descriptions: []string{"One \"1\""}},
		{Name: "THREE", Value: 3, Descriptions: []string{"Two but one better!"}},
	}
}

func TestBuild_ExampleEnum(t *testing.T) {
	table, conflicts := Build(exampleMembers(), WithTypeName("ExampleEnumValues"))
	require.Empty(t, conflicts)

	cases := map[string]int{
		"One \"1\"":           1,
		"ZERO":                0,
		"Two but one better!": 3,
	}
	for text, want := range cases {
		got, err := table.Parse(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}

	_, err := table.Parse("UNKNOWN")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreachable))

	var unreachable *UnreachableError
	require.ErrorAs(t, err, &unreachable)
	assert.Equal(t, "ExampleEnumValues", unreachable.Type)
	assert.Equal(t, "UNKNOWN", unreachable.Input)
	assert.Equal(t, InputDescription, unreachable.Kind)
}

func TestBuild_NameIsImplicitDescription(t *testing.T) {
	table, conflicts := Build([]Member[int]{
		{Name: "Red", Value: 0},
		{Name: "Green", Value: 1},
	})
	require.Empty(t, conflicts)

	assert.Equal(t, 1, table.MustParse("Green"))
	assert.Equal(t, 0, table.MustParse("Red"))

	_, ok := table.Lookup("green")
	assert.False(t, ok, "matching must be case-sensitive")
	_, ok = table.Lookup(" Green")
	assert.False(t, ok, "input must not be trimmed")
}

func TestBuild_MultipleAliases(t *testing.T) {
	table, conflicts := Build([]Member[int]{
		{Name: "Kilo", Value: 1000, Descriptions: []string{"k", "kilo", "thousand"}},
		{Name: "Mega", Value: 1000000, Descriptions: []string{"M"}},
	})
	require.Empty(t, conflicts)

	for _, text := range []string{"k", "kilo", "thousand"} {
		assert.Equal(t, 1000, table.MustParse(text))
	}
	desc, ok := table.Description(1000)
	require.True(t, ok)
	assert.Equal(t, "k", desc)
	assert.Equal(t, 4, table.Len())
}

func TestBuild_FirstWinsOnConflict(t *testing.T) {
	table, conflicts := Build([]Member[int]{
		{Name: "Alpha", Value: 1, Descriptions: []string{"shared", "alpha"}},
		{Name: "Beta", Value: 2, Descriptions: []string{"beta", "shared"}},
	})

	require.Len(t, conflicts, 1)
	assert.Equal(t, "shared", conflicts[0].Description)
	assert.Equal(t, "Alpha", conflicts[0].First.Name)
	assert.Equal(t, "Beta", conflicts[0].Conflicting.Name)

	assert.Equal(t, 1, table.MustParse("shared"))
	assert.Equal(t, 2, table.MustParse("beta"))
	assert.Equal(t, 1, table.MustParse("alpha"))
}

func TestBuild_RepeatedDescriptionOnSameMember(t *testing.T) {
	table, conflicts := Build([]Member[int]{
		{Name: "Only", Value: 7, Descriptions: []string{"x", "x"}},
	})
	assert.Empty(t, conflicts)
	assert.Equal(t, 1, table.Len())
}

func TestBuild_NumericAliasesKeepDistinctDescriptions(t *testing.T) {
	table, conflicts := Build([]Member[int]{
		{Name: "ONE", Value: 1, Descriptions: []string{"one"}},
		{Name: "UNO", Value: 1, Descriptions: []string{"uno"}},
	})
	require.Empty(t, conflicts)

	assert.Equal(t, 1, table.MustParse("one"))
	assert.Equal(t, 1, table.MustParse("uno"))

	m, ok := table.Lookup("uno")
	require.True(t, ok)
	assert.Equal(t, "UNO", m.Name)

	name, ok := table.Name(1)
	require.True(t, ok)
	assert.Equal(t, "ONE", name)
}

func TestBuild_ObsoleteMembers(t *testing.T) {
	table, conflicts := Build([]Member[int]{
		{Name: "Legacy", Value: 0, Descriptions: []string{"legacy"}, Obsolete: true},
		{Name: "Current", Value: 1, Descriptions: []string{"current"}},
		{Name: "OldCurrent", Value: 1, Descriptions: []string{"old-current"}, Obsolete: true},
	})
	require.Empty(t, conflicts)

	assert.Equal(t, 0, table.MustParse("legacy"))
	assert.Equal(t, 1, table.MustParse("old-current"))

	_, ok := table.Name(0)
	assert.False(t, ok)
	_, ok = table.Description(0)
	assert.False(t, ok)
	assert.True(t, table.IsDefined(0))
	assert.False(t, table.IsDefined(2))

	name, ok := table.Name(1)
	require.True(t, ok)
	assert.Equal(t, "Current", name)
}

func TestBuild_ObsoleteAliasSharesDescription(t *testing.T) {
	table, conflicts := Build([]Member[int]{
		{Name: "Colour", Value: 1, Descriptions: []string{"colour"}, Obsolete: true},
		{Name: "Color", Value: 1, Descriptions: []string{"colour", "color"}},
	})
	require.Empty(t, conflicts)

	m, ok := table.Lookup("colour")
	require.True(t, ok)
	assert.Equal(t, "Colour", m.Name)

	name, ok := table.Name(1)
	require.True(t, ok)
	assert.Equal(t, "Color", name)

	desc, ok := table.Description(1)
	require.True(t, ok)
	assert.Equal(t, "colour", desc)
	assert.Equal(t, 1, table.MustParse(desc))
	assert.Equal(t, 2, table.Len())
}

func TestBuild_Deterministic(t *testing.T) {
	first, c1 := Build(exampleMembers())
	second, c2 := Build(exampleMembers())

	if diff := cmp.Diff(first.Entries(), second.Entries()); diff != "" {
		t.Errorf("entries differ between builds (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(c1, c2); diff != "" {
		t.Errorf("conflicts differ between builds (-first +second):\n%s", diff)
	}
}

func TestBuild_DoesNotAliasInput(t *testing.T) {
	members := []Member[int]{{Name: "A", Value: 1, Descriptions: []string{"a"}}}
	table, _ := Build(members)
	members[0].Descriptions[0] = "changed"

	assert.Equal(t, 1, table.MustParse("a"))
	_, ok := table.Lookup("changed")
	assert.False(t, ok)
}

func TestTable_MustParsePanics(t *testing.T) {
	table, _ := Build(exampleMembers(), WithTypeName("ExampleEnumValues"))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrUnreachable)
		assert.EqualError(t, err, `enumdesc: ExampleEnumValues has no member described as "completely-unknown-text"`)
	}()
	table.MustParse("completely-unknown-text")
}

func TestUnknownValue(t *testing.T) {
	type level uint8
	err := UnknownValue("level", level(42))
	assert.ErrorIs(t, err, ErrUnreachable)
	assert.Equal(t, InputValue, err.Kind)
	assert.EqualError(t, err, "enumdesc: level has no member with value 42")
}
