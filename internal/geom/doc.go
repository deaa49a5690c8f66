// Package geom holds the pure geometry behind the Sierpiński construction.
//
// A bounding [Triangle] splits into one center triangle, formed by the
// midpoints of its three edges, and three corner children:
//
//	        p0
//	       /  \
//	    m01----m20
//	    / \    / \
//	  p1---m12----p2
//
// [Subdivide] stops producing children once the span between m01 and p1
// drops below one physical pixel, so the recursion depth follows the
// display resolution rather than a fixed iteration count.
package geom
