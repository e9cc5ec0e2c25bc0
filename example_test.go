package sift_test

import (
	"fmt"

	"github.com/sift-go/sift"
)

type Animal struct {
	Name string
	Tags []string
}

func Example() {
	animals := []Animal{
		{Name: "Dog", Tags: []string{"animal", "pet"}},
		{Name: "Wolf", Tags: []string{"animal", "wild"}},
		{Name: "Cat", Tags: []string{"animal", "pet"}},
	}

	s := sift.New[Animal]().
		Column("name", func(a Animal) []string { return []string{a.Name} }).
		Column("tag", func(a Animal) []string { return a.Tags }).
		SelectAll().
		TieBreak(func(a, b Animal) bool { return a.Name < b.Name }).
		MustBuild()

	s.Index(animals)

	results, err := s.Query("tag:pet")
	if err != nil {
		panic(err)
	}
	for _, a := range results {
		fmt.Println(a.Name)
	}
	// Output:
	// Cat
	// Dog
}

func Example_effects() {
	animals := []Animal{
		{Name: "Dog", Tags: []string{"pet"}},
		{Name: "Wolf", Tags: []string{"wild"}},
		{Name: "Cat", Tags: []string{"pet"}},
	}

	s := sift.New[Animal]().
		Column("name", func(a Animal) []string { return []string{a.Name} }).
		Column("tag", func(a Animal) []string { return a.Tags }).
		SelectAll().
		TieBreak(func(a, b Animal) bool { return a.Name < b.Name }).
		MustBuild()

	s.Index(animals)

	// Narrow to pets, drop cats, then bring wolves back in.
	results, err := s.Query("tag:pet -name:cat +name:wolf")
	if err != nil {
		panic(err)
	}
	for _, a := range results {
		fmt.Println(a.Name)
	}
	// Output:
	// Wolf
	// Dog
}
