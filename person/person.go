// Package person is a second typestate builder. It declares its own state
// domain, Need, instead of reusing Presence, to show that any sealed marker
// interface can serve as a domain.
package person

import (
	"fmt"

	"github.com/comalice/typestatex"
)

// Need is the state domain of the person slots. Each need is met once.
type Need interface {
	need()
	String() string
}

// Pending is the initial Need witness.
type Pending struct{}

// Met is the Need witness after the need was taken care of.
type Met struct{}

func (Pending) need()          {}
func (Met) need()              {}
func (Pending) String() string { return "Pending" }
func (Met) String() string     { return "Met" }

// MaxSleep bounds a single night, in hours.
const MaxSleep = 24

type payload struct {
	name  string
	meal  typestatex.Value[string]
	drink typestatex.Value[int]
	sleep typestatex.Value[int]
	check typestatex.Checker
}

// Builder accumulates a Person. H, T and S track hunger, thirst and sleep.
type Builder[H, T, S Need] struct {
	_ [0]H
	_ [0]T
	_ [0]S
	h typestatex.Handle[payload]
}

// New starts a builder for name with every need Pending.
func New(name string) Builder[Pending, Pending, Pending] {
	p := payload{name: name}
	p.check.NotEmpty("name", name)
	return Builder[Pending, Pending, Pending]{h: typestatex.Mint(p)}
}

// Eat meets hunger.
func Eat[T, S Need](b Builder[Pending, T, S], meal string) Builder[Met, T, S] {
	return Builder[Met, T, S]{h: typestatex.Step(b.h, func(p *payload) {
		p.meal = typestatex.Of(meal)
		p.check.NotEmpty("meal", meal)
	})}
}

// Drink meets thirst with ml millilitres.
func Drink[H, S Need](b Builder[H, Pending, S], ml int) Builder[H, Met, S] {
	return Builder[H, Met, S]{h: typestatex.Step(b.h, func(p *payload) {
		p.drink = typestatex.Of(ml)
		p.check.Min("drink", ml, 1)
	})}
}

// Sleep meets the optional sleep need.
func Sleep[H, T Need](b Builder[H, T, Pending], hours int) Builder[H, T, Met] {
	return Builder[H, T, Met]{h: typestatex.Step(b.h, func(p *payload) {
		p.sleep = typestatex.Of(hours)
		p.check.Range("sleep", hours, 1, MaxSleep)
	})}
}

// Build needs hunger and thirst met. Sleep may be in either state.
func Build[S Need](b Builder[Met, Met, S]) (Person, error) {
	p, err := b.h.TryTake()
	if err != nil {
		return Person{}, err
	}
	if err := p.check.Err("person " + p.name); err != nil {
		return Person{}, err
	}
	meal, _ := p.meal.Get()
	ml, _ := p.drink.Get()
	hours, rested := p.sleep.Get()
	return Person{name: p.name, meal: meal, drankML: ml, sleptHours: hours, rested: rested}, nil
}

// Person is the immutable product of Build.
type Person struct {
	name       string
	meal       string
	drankML    int
	sleptHours int
	rested     bool
}

func (p Person) Name() string { return p.name }
func (p Person) Meal() string { return p.meal }
func (p Person) DrankML() int { return p.drankML }

// Slept returns the hours slept and false if Sleep was never called.
func (p Person) Slept() (int, bool) { return p.sleptHours, p.rested }

func (p Person) String() string {
	if !p.rested {
		return fmt.Sprintf("%s ate %s, drank %dml, did not sleep", p.name, p.meal, p.drankML)
	}
	return fmt.Sprintf("%s ate %s, drank %dml, slept %dh", p.name, p.meal, p.drankML, p.sleptHours)
}
