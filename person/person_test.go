package person_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/typestatex"
	"github.com/comalice/typestatex/person"
	"github.com/comalice/typestatex/testutil"
)

func TestBuildWithoutSleep(t *testing.T) {
	b := person.Drink(person.Eat(person.New("Jane"), "soup"), 250)

	p, err := person.Build(b)
	require.NoError(t, err)
	assert.Equal(t, "Jane", p.Name())
	assert.Equal(t, "soup", p.Meal())
	assert.Equal(t, 250, p.DrankML())
	_, rested := p.Slept()
	assert.False(t, rested)
	assert.Equal(t, "Jane ate soup, drank 250ml, did not sleep", p.String())
}

func TestBuildAnyOrder(t *testing.T) {
	b := person.Eat(person.Drink(person.Sleep(person.New("Joe"), 8), 500), "bread")

	p, err := person.Build(b)
	require.NoError(t, err)
	hours, rested := p.Slept()
	assert.True(t, rested)
	assert.Equal(t, 8, hours)
}

func TestRuntimeChecks(t *testing.T) {
	b := person.Sleep(person.Drink(person.Eat(person.New("Joe"), ""), 0), 30)

	_, err := person.Build(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, typestatex.ErrEmptyValue)
	assert.ErrorIs(t, err, typestatex.ErrBelowMinimum)
	assert.ErrorIs(t, err, typestatex.ErrAboveMaximum)
}

func TestNeedNames(t *testing.T) {
	assert.Equal(t, "Pending", typestatex.Name[person.Pending]())
	assert.Equal(t, "Met", typestatex.Name[person.Met]())
}

func TestStaticMisuseDoesNotCompile(t *testing.T) {
	tc := testutil.NewTypeChecker(t)
	src := func(body string) string {
		return fmt.Sprintf("package main\n\nimport %q\n\nfunc main() {\n\t%s\n}\n", tc.Module()+"/person", body)
	}

	require.NoError(t, tc.Check(src(`_, _ = person.Build(person.Eat(person.Drink(person.New("a"), 1), "x"))`)))

	rejected := []struct {
		name string
		body string
		want string
	}{
		{"thirst pending", `_, _ = person.Build(person.Eat(person.New("a"), "x"))`, "person.Builder[person.Met, person.Met, S]"},
		{"eat twice", `_ = person.Eat(person.Eat(person.New("a"), "x"), "y")`, "person.Builder[person.Pending, T, S]"},
		{"sleep twice", `_ = person.Sleep(person.Sleep(person.New("a"), 1), 2)`, "person.Builder[H, T, person.Pending]"},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			err := tc.Check(src(tt.body))
			require.Error(t, err)
			assert.ErrorContains(t, err, "does not match")
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
