package feed

import "errors"

// ErrEmptyPool is returned when a content pool has no titles or no bodies.
var ErrEmptyPool = errors.New("content pool must have at least one title and one body")

// Pool holds the candidate titles and bodies for generated notifications.
// Titles[i] and Bodies[i] form a content pair, but by default the two are
// sampled independently.
type Pool struct {
	Titles []string
	Bodies []string
}

// DefaultPool returns the four built-in content pairs.
func DefaultPool() Pool {
	return Pool{
		Titles: []string{
			"New version available",
			"New post from Juan",
			"Message from Maria",
			"Someone liked a post",
		},
		Bodies: []string{
			"The app has been updated to v1.0.2. Head to the store and update it!",
			"You have been tagged in a new post. Check it out now!",
			"Don't forget to attend tomorrow's training at 6pm at Intecap.",
			"Juan liked your post. Go check your profile!",
		},
	}
}

// Validate reports ErrEmptyPool when either side of the pool is empty.
func (p Pool) Validate() error {
	if len(p.Titles) == 0 || len(p.Bodies) == 0 {
		return ErrEmptyPool
	}
	return nil
}
