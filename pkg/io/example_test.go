package io_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/anchorgraph/pkg/constraint"
	"github.com/matzehuels/anchorgraph/pkg/io"
)

func ExampleReadScene() {
	input := `{
	  "root": {"width": 400, "height": 300},
	  "widgets": [
	    {"id": "title", "width": 120, "height": 20},
	    {"id": "body", "width": 200, "height": 100}
	  ],
	  "connections": [
	    {"from": "body", "from_anchor": "TOP", "to": "title", "to_anchor": "BOTTOM", "margin": 8},
	    {"from": "body", "from_anchor": "TOP", "to": "title", "to_anchor": "LEFT"}
	  ]
	}`

	s, err := io.ReadScene(context.Background(), strings.NewReader(input))
	if err != nil {
		panic(err)
	}
	body, _ := s.Widget("body")
	fmt.Println(body.Anchor(constraint.AnchorTop))
	fmt.Println("rejected:", s.Rejected)
	// Output:
	// body:TOP connected to title:BOTTOM
	// rejected: [body.TOP -> title.LEFT]
}

func ExampleWriteScene() {
	root := constraint.NewRootContainer(0, 0, 100, 50)
	root.SetDebugName("root")
	w := constraint.NewWidget(0, 0, 20, 10)
	w.SetDebugName("w")
	root.Add(w)
	w.Connect(constraint.AnchorLeft, root.Widget, constraint.AnchorLeft, 5)

	if err := io.WriteScene(root, os.Stdout); err != nil {
		panic(err)
	}
	// Output:
	// {
	//   "root": {
	//     "id": "root",
	//     "width": 100,
	//     "height": 50
	//   },
	//   "widgets": [
	//     {
	//       "id": "w",
	//       "width": 20,
	//       "height": 10
	//     }
	//   ],
	//   "connections": [
	//     {
	//       "from": "w",
	//       "from_anchor": "LEFT",
	//       "to": "root",
	//       "to_anchor": "LEFT",
	//       "margin": 5,
	//       "strength": "strong",
	//       "creator": "user",
	//       "primitive": true
	//     }
	//   ]
	// }
}
