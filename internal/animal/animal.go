// Package animal shows composition in place of class inheritance.
//
// Dog and Cat embed base, so they get Name, Species and Info for free and
// override Sound with their own method. Anything that needs "some animal"
// takes the Animal interface.
package animal

import "fmt"

type Animal interface {
	Name() string
	Species() string
	Sound() string
	Info() string
}

type base struct {
	name    string
	species string
}

func (b base) Name() string    { return b.name }
func (b base) Species() string { return b.species }
func (b base) Sound() string   { return "Some sound" }
func (b base) Info() string    { return fmt.Sprintf("%s is a %s", b.name, b.species) }

// Generic is an animal with no special behaviour.
type Generic struct{ base }

func NewGeneric(name, species string) Generic {
	return Generic{base{name: name, species: species}}
}

type Dog struct {
	base
	Breed string
}

func NewDog(name, breed string) Dog {
	return Dog{base: base{name: name, species: "Dog"}, Breed: breed}
}

func (d Dog) Sound() string { return "Woof! Woof!" }

func (d Dog) Fetch() string { return d.name + " is fetching the ball!" }

type Cat struct {
	base
	Color string
}

func NewCat(name, color string) Cat {
	return Cat{base: base{name: name, species: "Cat"}, Color: color}
}

func (c Cat) Sound() string { return "Meow!" }

func (c Cat) Scratch() string { return c.name + " is scratching the furniture!" }

// Chorus returns each animal's sound, in order.
func Chorus(animals ...Animal) []string {
	out := make([]string, 0, len(animals))
	for _, a := range animals {
		out = append(out, fmt.Sprintf("%s: %s", a.Name(), a.Sound()))
	}
	return out
}
