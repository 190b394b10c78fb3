package fence

// Block is one embedded code region of a document.
type Block struct {
	Lang  string
	Attrs Attrs
	Code  []byte

	// Offset is the byte offset of the opening marker in the document.
	Offset    int
	StartLine int
	EndLine   int
}

type Blocks []*Block
