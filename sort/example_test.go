package sort_test

import (
	"fmt"

	"github.com/exascience/parradix/sort"
)

type Person struct {
	Name string
	Age  int
}

func (p Person) String() string {
	return fmt.Sprintf("%s: %d", p.Name, p.Age)
}

func Example() {
	people := []Person{
		{"Bob", 31},
		{"John", 42},
		{"Michael", 17},
		{"Jenny", 26},
		{"Alice", 31},
		{"Eve", 17},
	}

	fmt.Println(people)
	sort.IntegerSort(people, 128, func(p Person) int { return p.Age })
	fmt.Println(people)

	// Output:
	// [Bob: 31 John: 42 Michael: 17 Jenny: 26 Alice: 31 Eve: 17]
	// [Michael: 17 Eve: 17 Jenny: 26 Bob: 31 Alice: 31 John: 42]
}

func ExampleIntegerSortOffsets() {
	grades := []int{3, 1, 3, 0, 1, 3}
	offsets := make([]int, 5)
	sort.IntegerSortOffsets(grades, offsets, 5, func(g int) int { return g })
	fmt.Println(grades)
	fmt.Println(offsets)

	// Output:
	// [0 1 1 3 3 3]
	// [0 1 3 3 6]
}
