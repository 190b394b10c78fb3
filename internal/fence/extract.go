package fence

// Extract scans a document and returns all component-delimited code blocks
// without modifying the source.
func Extract(source []byte, component string) (Blocks, error) {
	var blocks Blocks

	_, _, err := Walk(source, component, func(block *Block) error {
		blocks = append(blocks, block)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

// ExtractMarkdown parses a Markdown document and returns all fenced code
// blocks without modifying the source.
func ExtractMarkdown(source []byte) (Blocks, error) {
	var blocks Blocks

	_, _, err := WalkMarkdown(source, func(block *Block) error {
		blocks = append(blocks, block)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

// ExtractMDX returns the component-delimited blocks and Markdown fences of
// an MDX document, in document order.
func ExtractMDX(source []byte, component string) (Blocks, error) {
	var blocks Blocks

	_, _, err := WalkMDX(source, component, func(block *Block) error {
		blocks = append(blocks, block)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}
