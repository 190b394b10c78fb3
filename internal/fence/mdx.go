package fence

import "sort"

// WalkMDX calls walker for both the component-delimited blocks and the
// Markdown fences of an MDX document, in document order. A block nested in
// a block of the other kind is part of its outer block and is not walked on
// its own.
func WalkMDX(source []byte, component string, walker Walker) (bool, []byte, error) {
	mark, err := newMarker(component)
	if err != nil {
		return false, nil, err
	}

	fences, err := markdownSites(source)
	if err != nil {
		return false, nil, err
	}

	return walkSites(source, mergeSites(componentSites(source, mark), fences), walker)
}

func mergeSites(components, fences []*site) []*site {
	sites := make([]*site, 0, len(components)+len(fences))

	for _, s := range components {
		if !nested(s, fences) {
			sites = append(sites, s)
		}
	}

	for _, s := range fences {
		if !nested(s, components) {
			sites = append(sites, s)
		}
	}

	sort.SliceStable(sites, func(i, j int) bool {
		return sites[i].start < sites[j].start
	})

	return sites
}

func nested(s *site, outer []*site) bool {
	for _, o := range outer {
		if s.start > o.start && s.start < o.end {
			return true
		}
	}

	return false
}
