package store

// SampleEntry is a sample waiting to be stored.
type SampleEntry struct {
	Value float64
	Note  string
}

// Sample is a stored observation. Immutable once written.
type Sample struct {
	ID    int64
	Value float64
	Note  string
}

// FitRecord is one historical goodness-of-fit snapshot.
type FitRecord struct {
	ID  int64
	R2  float64
	MAE float64
	MSE float64
}
