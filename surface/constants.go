// SPDX-License-Identifier: MIT

package surface

// Method names used as error prefixes.
const (
	MethodNew                 = "New"
	MethodBuild               = "Build"
	MethodBuildIdeal          = "BuildIdeal"
	MethodBuildNoisy          = "BuildNoisy"
	MethodInitDetectors       = "InitDetectors"
	MethodRoundDetectors      = "RoundDetectors"
	MethodFinalDetectors      = "FinalDetectors"
	MethodStabilizerDetectors = "StabilizerDetectors"
	MethodObservable          = "Observable"
)

// Sub-rounds of the stabilizer stage and the two special-cased ones.
const (
	subRounds          = 4
	subRoundNoData     = 1 // no data Hadamards after this sub-round
	subRoundAncillaOut = 3 // ancillas rotated back after this sub-round
)

// observableIndex is the single logical observable every circuit declares.
const observableIndex = 0

// prepFlipFactor scales p for the X_ERROR on every qubit after noisy preparation.
const prepFlipFactor = 2
