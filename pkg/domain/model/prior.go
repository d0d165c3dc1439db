package model

// DefaultBaseURL is the remote directory that hosts the prior files
const DefaultBaseURL = "https://github.com/MolecularAI/REINVENT4/raw/main/priors"

// PriorsDirName is the directory, next to the executable, where priors are stored
const PriorsDirName = "priors"

var priorNames = [...]string{
	"libinvent.prior",
	"linkinvent.prior",
	"mol2mol_high_similarity.prior",
	"mol2mol_medium_similarity.prior",
	"mol2mol_mmp.prior",
	"mol2mol_scaffold.prior",
	"mol2mol_scaffold_generic.prior",
	"mol2mol_similarity.prior",
	"pubchem_ecfp4_with_count_with_rank_reinvent4_dict_voc.prior",
	"reinvent.prior",
}

var priorSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(priorNames))
	for _, name := range priorNames {
		set[name] = struct{}{}
	}
	return set
}()

// IsPrior reports whether name is a downloadable prior. The match is exact.
func IsPrior(name string) bool {
	_, ok := priorSet[name]
	return ok
}

// PriorNames returns the registered prior names in registry order
func PriorNames() []string {
	names := make([]string, len(priorNames))
	copy(names, priorNames[:])
	return names
}
