package entity

// Service is a catalog entry describing one kind of help. It is immutable reference data.
type Service struct {
	ID    int64             `json:"id"`
	Key   string            `json:"key"`
	Names map[string]string `json:"names"` // locale -> display name
}

// Name returns the display name for locale, falling back to English and then to the key.
func (s *Service) Name(locale string) string {
	if name, ok := s.Names[locale]; ok && name != "" {
		return name
	}
	if name, ok := s.Names["en"]; ok && name != "" {
		return name
	}

	return s.Key
}
