// Package fare implements the arithmetic of an auto-rickshaw meter: parsing
// fares quoted as text, rounding them for display, applying surge pricing,
// picking the cheapest and costliest of a set of quotes, and measuring the
// distance between two kilometre markers.
//
// Every function accepts loosely typed input and answers invalid input with
// a sentinel instead of an error:
//
//	fare.Parse("152.50")                     // 152.5
//	fare.Parse("abc")                        // -1
//	fare.Round(152.567, 2)                   // "152.57"
//	fare.Surge(73, 1.8)                      // 132
//	fare.CheapestAndCostliest(150, 80, 200)  // &Range{Cheapest: 80, Costliest: 200}
//	fare.DistanceDifference("15", "8")       // 7
package fare
