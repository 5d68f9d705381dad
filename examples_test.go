package runeprop_test

import (
	"fmt"

	"github.com/scalecode-solutions/runeprop"
)

func ExampleNewGraphemes() {
	g := runeprop.NewGraphemes("🇩🇪🏳️‍🌈")
	for g.Next() {
		fmt.Println(g.Str())
	}
	// Output: 🇩🇪
	//🏳️‍🌈
}

func ExampleNextCluster() {
	c := runeprop.NewStringCursor("Café!")
	for {
		cluster, ok := runeprop.NextCluster(c)
		if !ok {
			break
		}
		fmt.Printf("(%s)", cluster)
	}
	fmt.Println()
	// Output: (C)(a)(f)(é)(!)
}

func ExampleIsLetter() {
	fmt.Println(runeprop.IsLetter('a'), runeprop.IsLetter('3'), runeprop.IsLetter('世'))
	// Output: true false true
}

func ExampleIsDecimalNumber() {
	for _, r := range "7٣¾" {
		fmt.Println(string(r), runeprop.IsDecimalNumber(r))
	}
	// Output: 7 true
	//٣ true
	//¾ false
}
