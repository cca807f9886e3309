package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest size for a directed ring (1→2→1).
const MinCycleNodes = 2

// MinPathNodes is the smallest meaningful size for a path.
// A path of fewer than 2 nodes has no edges.
const MinPathNodes = 2

// MinStarNodes is the smallest size for a star: a hub plus one leaf.
const MinStarNodes = 2

// MinCompleteNodes is the smallest size accepted by Complete.
const MinCompleteNodes = 1

// MinRandomSparseNodes is the smallest size accepted by RandomSparse.
const MinRandomSparseNodes = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
// A grid of size 1×1 has no edges, but is considered valid.
const MinGridDim = 1

//-----------------------------------------------------------------------------
// Default Weights and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// MinProbability is the lower bound for p in RandomSparse, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for p in RandomSparse, inclusive.
const MaxProbability = 1.0
