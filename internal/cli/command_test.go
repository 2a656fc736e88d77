package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-cheat/internal/search"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line    string
		kind    Kind
		index   int
		letters string
	}{
		{"+abc", KindRequirePresent, 0, "abc"},
		{" + A B ", KindRequirePresent, 0, "ab"},
		{"-def", KindRequireAbsent, 0, "def"},
		{"-DEF", KindRequireAbsent, 0, "def"},
		{"1=g", KindFixPosition, 1, "g"},
		{"5 = Z", KindFixPosition, 5, "z"},
		{"2!h", KindExcludeAtPosition, 2, "h"},
		{"3!xyz", KindExcludeAtPosition, 3, "xyz"},
		{"g.abc", KindTemplate, 0, "g.abc"},
		{".....", KindTemplate, 0, "....."},
		{"CRANE", KindTemplate, 0, "crane"},
		{"/", KindList, 0, ""},
		{"", KindHelp, 0, ""},
		{"   \t", KindHelp, 0, ""},
		{"0=a", KindHelp, 0, ""},
		{"6=a", KindHelp, 0, ""},
		{"1=ab", KindHelp, 0, ""},
		{"1!", KindHelp, 0, ""},
		{"+", KindHelp, 0, ""},
		{"+a1", KindHelp, 0, ""},
		{"abcd", KindHelp, 0, ""},
		{"abcdef", KindHelp, 0, ""},
		{"\\", KindHelp, 0, ""},
		{"help", KindHelp, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd := Parse(tt.line)
			assert.Equal(t, tt.kind, cmd.Kind)
			assert.Equal(t, tt.index, cmd.Index)
			assert.Equal(t, tt.letters, cmd.Letters)
		})
	}
}

func TestKind(t *testing.T) {
	assert.True(t, KindTemplate.Narrows())
	assert.True(t, KindExcludeAtPosition.Narrows())
	assert.False(t, KindList.Narrows())
	assert.False(t, KindHelp.Narrows())
	assert.Equal(t, "require_present", KindRequirePresent.String())
}

func TestExecute(t *testing.T) {
	e := search.New([]string{"crane", "crate", "grape", "slate", "space", "speed"})

	res, err := Execute(e, Parse("+a"))
	require.NoError(t, err)
	assert.Equal(t, 5, res.Remaining)

	res, err = Execute(e, Parse("-s"))
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "crate", "grape"}, e.Candidates())
	assert.Equal(t, 3, res.Remaining)

	_, err = Execute(e, Parse("4!n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"crate", "grape"}, e.Candidates())

	_, err = Execute(e, Parse("c...."))
	require.NoError(t, err)
	assert.Equal(t, []string{"crate"}, e.Candidates())
}

func TestExecute_HelpLeavesStateAlone(t *testing.T) {
	e := search.New([]string{"crane", "crate"})
	res, err := Execute(e, Parse("what?"))
	require.NoError(t, err)
	assert.Equal(t, KindHelp, res.Command.Kind)
	assert.Equal(t, 2, e.Len())
}

func TestExecute_List(t *testing.T) {
	e := search.New([]string{"space", "speed"})
	res, err := Execute(e, Parse("/"))
	require.NoError(t, err)
	assert.Equal(t, []string{"speed", "space"}, res.Ranked)
	assert.Equal(t, 2, e.Len())
}

func TestExecute_ReportsArgumentErrors(t *testing.T) {
	e := search.New([]string{"crane"})
	_, err := Execute(e, Command{Kind: KindFixPosition, Index: 9, Letters: "a"})
	assert.ErrorIs(t, err, search.ErrInvalidArgument)
	assert.EqualError(t, err, "index=9 must be between 1 and 5")
}
