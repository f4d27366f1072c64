package tidy_test

import (
	"fmt"

	"github.com/msto63/tidystring/pkg/frame"
	"github.com/msto63/tidystring/pkg/tidy"
)

func ExampleReplaceN() {
	all, _ := tidy.Replace("hello world", "o", "X")
	first, _ := tidy.ReplaceN("hello world", "o", "X", 1)
	fmt.Println(all)
	fmt.Println(first)
	// Output:
	// hellX wXrld
	// hellX world
}

func ExampleExtract() {
	out, _ := tidy.Extract([]string{"hello world", "string operations"}, `h(\w+)`)
	for _, p := range out.([]*string) {
		if p == nil {
			fmt.Println("<nil>")
			continue
		}
		fmt.Println(*p)
	}
	// Output:
	// ello
	// <nil>
}

func ExampleLocateAll() {
	out, _ := tidy.LocateAll("hello world", "o")
	fmt.Println(out)
	// Output: [{4 5} {7 8}]
}

func ExamplePad() {
	out, _ := tidy.Pad("hello", 10, tidy.SideLeft, "*")
	fmt.Println(out)
	// Output: *****hello
}

func ExampleCamelToSnake() {
	snake, _ := tidy.CamelToSnake("helloWorld")
	camel, _ := tidy.SnakeToCamel("hello_world")
	fmt.Println(snake, camel)
	// Output: hello_world HelloWorld
}

func ExampleConcatSep() {
	out, _ := tidy.ConcatSep("-", "hello", "world")
	fmt.Println(out)
	// Output: hello-world
}

func ExampleLength_column() {
	col := frame.NewColumn("word", []string{"tidy", "string"})
	out, _ := tidy.Length(col)
	fmt.Print(out)
	// Output:
	// 0    4
	// 1    6
	// Name: word, Length: 2
}
