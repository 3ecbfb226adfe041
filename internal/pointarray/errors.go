package pointarray

import "github.com/pkg/errors"

var (
	// ErrBadRange reports an odd coordinate count or a range outside its buffer.
	ErrBadRange = errors.New("pointarray: bad range")
	// ErrUnsupported reports a mutation the representation cannot perform.
	ErrUnsupported = errors.New("pointarray: unsupported operation")
	// ErrArithmetic reports that byte quantisation did not converge.
	ErrArithmetic = errors.New("pointarray: quantisation did not converge")
	// ErrIllegalPathState reports an outline ArrayData cannot hold.
	ErrIllegalPathState = errors.New("pointarray: illegal path state")
)

// checkRange validates a coordinate range [lower, upper) over a buffer of n
// values.
func checkRange(n, lower, upper int) error {
	switch {
	case n%2 != 0:
		return errors.Wrapf(ErrBadRange, "odd buffer length %d", n)
	case lower < 0 || upper > n:
		return errors.Wrapf(ErrBadRange, "[%d,%d) outside buffer of %d", lower, upper, n)
	case upper < lower:
		return errors.Wrapf(ErrBadRange, "upper %d below lower %d", upper, lower)
	case lower%2 != 0 || (upper-lower)%2 != 0:
		return errors.Wrapf(ErrBadRange, "[%d,%d) splits a point", lower, upper)
	}
	return nil
}

// checkPoints validates a point range [lower, upper) against count points.
func checkPoints(count, lower, upper int) error {
	if lower < 0 || upper > count || upper < lower {
		return errors.Wrapf(ErrBadRange, "points [%d,%d) of %d", lower, upper, count)
	}
	return nil
}
