package llrb_test

import (
	"fmt"

	"github.com/mikenye/tangotree/llrb"
)

func ExampleString() {
	root := llrb.Nil()
	root = llrb.Insert(root, 2)
	root = llrb.Insert(root, 1)
	root = llrb.Insert(root, 3)

	fmt.Print(llrb.String(root))
	// Output:
	// 2(black)
	//  ╭── 3(black)
	//  ╰── 1(black)
}
