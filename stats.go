package minmap

type Stats struct {
	Size    int
	Updates int // Set calls
	Lowered int // Set calls that decreased a bucket
}
