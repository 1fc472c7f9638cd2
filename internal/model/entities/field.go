package entities

// Field represents a tract of land growing a particular crop,
// sampled at one or more fixed points.
type Field struct {
	ID       string        `json:"id"`        // unique field identifier
	CropType string        `json:"crop_type"` // e.g. "corn", "wheat"
	Points   []SamplePoint `json:"points"`    // all sampling points in this field
}

// SamplePoint is a fixed location where soil samples are drawn.
type SamplePoint struct {
	FieldID   string  `json:"field_id"`
	ID        string  `json:"id"` // unique point identifier
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	DepthCm   int     `json:"depth_cm,omitempty"` // sampling depth
}

func (f *Field) GetPoint(pointID string) *SamplePoint {
	for i := range f.Points {
		if f.Points[i].ID == pointID {
			return &f.Points[i]
		}
	}
	return nil
}
