package ast

import (
	"encoding/json"
	"io"
)

type jsonAtom struct {
	Index    int         `json:"index"`
	Text     string      `json:"text"`
	Property string      `json:"property"`
	Line     int         `json:"line"`
	Col      int         `json:"col"`
	Value    interface{} `json:"value,omitempty"`
}

type jsonElement struct {
	Type  string `json:"type"`
	Index int    `json:"index"`
}

type jsonList struct {
	Index    int           `json:"index"`
	Property string        `json:"property"`
	Children []jsonElement `json:"children"`
}

type jsonArena struct {
	Atoms []jsonAtom `json:"atoms"`
	Lists []jsonList `json:"lists"`
}

// EncodeJSON writes the arena as a JSON document. Literal atoms carry their
// decoded value.
func EncodeJSON(w io.Writer, a *Arena) error {
	doc := jsonArena{
		Atoms: make([]jsonAtom, 0, len(a.Atoms)),
		Lists: make([]jsonList, 0, len(a.Lists)),
	}

	for i := range a.Atoms {
		line, col := a.Pos(Element{ElementAtom, i})
		atom := jsonAtom{
			Index:    i,
			Text:     a.AtomText(i),
			Property: a.AtomProps[i].String(),
			Line:     line,
			Col:      col,
		}
		if a.AtomProps[i].IsLiteral() {
			v, err := a.Value(i)
			if err != nil {
				return err
			}
			atom.Value = v.Value()
		}
		doc.Atoms = append(doc.Atoms, atom)
	}

	for i := range a.Lists {
		list := jsonList{
			Index:    i,
			Property: a.ListProps[i].String(),
			Children: []jsonElement{},
		}
		for _, e := range a.Children(i) {
			list.Children = append(list.Children, jsonElement{Type: e.Type.String(), Index: e.Index})
		}
		doc.Lists = append(doc.Lists, list)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
