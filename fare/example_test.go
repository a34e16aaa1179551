package fare_test

import (
	"fmt"

	"github.com/Gobd/desikit/fare"
)

func ExampleParse() {
	fmt.Println(fare.Parse("152.50"))
	fmt.Println(fare.Parse("abc"))
	// Output:
	// 152.5
	// -1
}

func ExampleRound() {
	fmt.Println(fare.Round(152.567, 2))
	fmt.Println(fare.Round(152.567, 0))
	fmt.Printf("%q\n", fare.Round(152.567, -1))
	// Output:
	// 152.57
	// 153
	// ""
}

func ExampleSurge() {
	fmt.Println(fare.Surge(73, 1.8))
	// Output: 132
}

func ExampleCheapestAndCostliest() {
	r := fare.CheapestAndCostliest(150, 80, 200)
	fmt.Println(r.Cheapest, r.Costliest)
	fmt.Println(fare.CheapestAndCostliest("x", -5))
	// Output:
	// 80 200
	// <nil>
}
