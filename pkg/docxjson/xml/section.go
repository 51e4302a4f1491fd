package xml

// HeaderDefault is the w:type of the header used on ordinary pages
const HeaderDefault = "default"

// SectionProperties represents w:sectPr. Only header references are read.
type SectionProperties struct {
	HeaderReferences []HeaderReference `xml:"headerReference"`
}

// HeaderReference links a section to a header part through a relationship id
type HeaderReference struct {
	Type string `xml:"type,attr"`
	ID   string `xml:"id,attr"`
}

// DefaultHeaderID returns the relationship id of the section's default
// header. ok is false when the section has no default header of its own.
func (s *SectionProperties) DefaultHeaderID() (id string, ok bool) {
	if s == nil {
		return "", false
	}
	for _, ref := range s.HeaderReferences {
		// w:type defaults to "default" when omitted
		if (ref.Type == "" || ref.Type == HeaderDefault) && ref.ID != "" {
			return ref.ID, true
		}
	}
	return "", false
}
