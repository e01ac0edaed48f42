package entity

// FrameSet is a cached frame list played at a fixed rate.
type FrameSet struct {
	Frames []string
	FPS    float64
}

// First returns the first frame or "" for an empty set
func (fs FrameSet) First() string {
	if len(fs.Frames) == 0 {
		return ""
	}
	return fs.Frames[0]
}
