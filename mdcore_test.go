package mdcore_test

import (
	"fmt"

	"github.com/jcorbin/mdcore"
)

// End-to-end examples: an ATX heading (plain and with a heading id), a
// raw HTML block wrapping one, an inline code span, one with a lone
// backtick inside a wider fence, and two list groupings (adjacent bullet
// items, and ordered items that merge across a blank line).

func Example_heading() {
	fmt.Println(mdcore.Translate([]byte("# Hello, world!")))
	// Output:
	// <h1>Hello, world!</h1>
}

func Example_rawHTML() {
	out := mdcore.Translate([]byte("<div>\n\n# Hello, world!\n\n</div>"),
		mdcore.WithDangerousHTML(true))
	fmt.Println(out)
	// Output:
	// <div>
	// <h1>Hello, world!</h1>
	// </div>
}

func Example_codeSpan() {
	fmt.Println(mdcore.Translate([]byte("`foo`")))
	// Output:
	// <p><code>foo</code></p>
}

func Example_codeSpanWithBacktick() {
	fmt.Println(mdcore.Translate([]byte("`` foo ` bar ``")))
	// Output:
	// <p><code>foo ` bar</code></p>
}

func Example_listGrouping() {
	fmt.Println(mdcore.Translate([]byte("* a\n* b")))
	// Output:
	// <ul>
	// <li>a</li>
	// <li>b</li>
	// </ul>
}

func Example_headingWithID() {
	out := mdcore.Translate([]byte("# Hello, world!"), mdcore.WithHeadingIDs(true))
	fmt.Println(out)
	// Output:
	// <h1 id="hello-world">Hello, world!</h1>
}

func Example_listMergeAcrossBlankLine() {
	fmt.Println(mdcore.Translate([]byte("1. a\n\n2. b")))
	// Output:
	// <ol>
	// <li>a</li>
	// <li>b</li>
	// </ol>
}
