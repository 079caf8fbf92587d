package trie

import "fmt"

func Example() {
	t := New()
	t.Insert("cat", "act", "at", "tac", "cats")

	fmt.Println(t.Anagrams("tca"))

	// Output:
	// [act cat tac at]
}

func Example_normalisation() {
	t := New()
	t.Insert("Niño", "árbol")

	fmt.Println(t.Anagrams("ONIN"))
	fmt.Println(t.Anagrams("labor"))

	// Output:
	// [nino]
	// [arbol]
}

func Example_noFeatures() {
	t := New().CaseSensitive().WithoutNormalisation()
	t.Insert("Ana", "ana")

	fmt.Println(t.Anagrams("naa"))
	fmt.Println(t.Anagrams("Ana"))

	// Output:
	// [ana]
	// [Ana]
}
