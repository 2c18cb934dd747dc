// Package lexicon holds the fixed phrase tables the tagger matches against.
//
// Table order is load-bearing: the tagger reports the first declared entry
// that matches as the primary value of each category, so entries must keep
// their declaration order. Tests inject smaller tables via the Lexicon struct
// instead of touching these defaults.
package lexicon

// CategoryBucket maps a broad biological-system bucket to the outcome
// keywords that select it. Buckets are checked in slice order; the first
// bucket containing a matching keyword wins.
type CategoryBucket struct {
	Name     string
	Keywords []string
}

// Lexicon is the immutable phrase configuration injected into the tagger.
type Lexicon struct {
	Organisms []string
	Exposures []string
	Outcomes  []string

	UpWords         []string
	DownWords       []string
	MitigationWords []string

	// ScientificIndicators qualify a passage as a finding when any category
	// matched, and contribute to the confidence score.
	ScientificIndicators []string
	// QuantitativeCues contribute to the confidence score only.
	QuantitativeCues []string
	// StatisticalCues drive the has_statistics flag on findings.
	StatisticalCues []string

	OutcomeCategories []CategoryBucket
}

// Default returns the full production lexicon.
func Default() *Lexicon {
	return &Lexicon{
		Organisms:            organisms,
		Exposures:            exposures,
		Outcomes:             outcomes,
		UpWords:              upWords,
		DownWords:            downWords,
		MitigationWords:      mitigationWords,
		ScientificIndicators: scientificIndicators,
		QuantitativeCues:     quantitativeCues,
		StatisticalCues:      statisticalCues,
		OutcomeCategories:    outcomeCategories,
	}
}

var organisms = []string{
	// Mammals
	"human", "humans", "mouse", "mice", "rat", "rats", "rodent", "rodents",
	"macaque", "macaques", "monkey", "monkeys", "primate", "primates",
	"rabbit", "rabbits", "pig", "pigs", "swine", "sheep", "goat", "goats",
	// Plants
	"plant", "plants", "arabidopsis", "arabidopsis thaliana", "tobacco", "rice", "wheat", "corn", "maize",
	"soybean", "soybeans", "tomato", "tomatoes", "potato", "potatoes", "lettuce", "cabbage",
	"brassica", "flax", "cotton", "barley", "oats", "sorghum", "millet",
	// Other organisms
	"drosophila", "fruit fly", "fruit flies", "zebrafish", "danio rerio", "c. elegans", "caenorhabditis elegans",
	"yeast", "saccharomyces", "candida", "bacteria", "bacterial", "e. coli", "escherichia coli",
	"tardigrade", "tardigrades", "snail", "snails", "fish", "fishes", "toadfish", "opsanus tau",
	"cell", "cells", "cell line", "cell lines", "tissue", "tissues", "organ", "organs",
}

var exposures = []string{
	// Gravity and space environment
	"microgravity", "micro-gravity", "zero gravity", "zero-gravity", "weightlessness", "weightless",
	"spaceflight", "space flight", "space environment", "space conditions", "orbital", "low earth orbit",
	"simulated microgravity", "simulated weightlessness", "clinostat", "clinorotation", "random positioning",
	"hindlimb suspension", "hind limb suspension", "unloading", "mechanical unloading",
	// Radiation
	"radiation", "ionizing radiation", "space radiation", "cosmic radiation", "galactic cosmic rays",
	"solar particle events", "solar wind", "proton radiation", "gamma radiation", "x-ray radiation",
	"heavy ions", "iron ions", "carbon ions", "oxygen ions", "radiation exposure", "irradiation",
	// Atmospheric and environmental
	"hypoxia", "hypoxic", "hypercapnia", "hypercapnic", "co2", "carbon dioxide", "oxygen", "o2",
	"atmospheric pressure", "low pressure", "vacuum", "partial pressure", "gas composition",
	"temperature", "thermal", "cold", "heat", "thermal stress", "thermal cycling",
	// Psychological and social
	"isolation", "confinement", "stress", "psychological stress", "social isolation", "loneliness",
	"sleep", "sleep deprivation", "circadian", "circadian rhythm", "light-dark cycle",
	// Physical and mechanical
	"vibration", "vibrations", "acceleration", "g-force", "g forces", "centrifugation",
	"electromagnetic", "magnetic field", "magnetic fields", "electric field", "electric fields",
	// Chemical and biological
	"oxidative stress", "reactive oxygen species", "ros", "free radicals", "antioxidant", "antioxidants",
	"inflammation", "inflammatory", "immune", "immunity", "pathogen", "pathogens", "infection", "infections",
}

var outcomes = []string{
	// Musculoskeletal system
	"bone", "bones", "skeletal", "skeleton", "osteoporosis", "osteopenia", "bone loss", "bone density",
	"bone formation", "bone resorption", "osteoblast", "osteoblasts", "osteoclast", "osteoclasts",
	"muscle", "muscles", "muscular", "muscle atrophy", "muscle loss", "muscle mass", "muscle strength",
	"sarcopenia", "myofiber", "myofibers", "myocyte", "myocytes", "muscle fiber", "muscle fibers",
	"tendon", "tendons", "ligament", "ligaments", "cartilage", "joint", "joints", "spine", "vertebrae",
	// Cardiovascular system
	"cardio", "cardiovascular", "heart", "cardiac", "myocardium", "myocardial", "blood pressure",
	"hypertension", "hypotension", "circulation", "circulatory", "vascular", "vasculature",
	"endothelial", "endothelium", "artery", "arteries", "vein", "veins", "capillary", "capillaries",
	"blood flow", "hemodynamics", "cardiac output", "stroke volume", "heart rate", "pulse",
	// Nervous system
	"neuro", "neural", "neurological", "brain", "cerebral", "cortex", "cortical", "hippocampus",
	"cerebellum", "brainstem", "neuron", "neurons", "neuronal", "synapse", "synapses", "synaptic",
	"neurotransmitter", "neurotransmitters", "dopamine", "serotonin", "acetylcholine", "gaba",
	"cognitive", "cognition", "memory", "learning", "behavior", "behaviour", "behavioral",
	"motor", "sensory", "perception", "coordination", "balance", "vestibular", "proprioception",
	// Immune system
	"immune", "immunity", "immunological", "lymphocyte", "lymphocytes", "t cell", "t cells",
	"b cell", "b cells", "nk cell", "nk cells", "macrophage", "macrophages", "neutrophil", "neutrophils",
	"cytokine", "cytokines", "interleukin", "interferon", "tumor necrosis factor", "tnf",
	"antibody", "antibodies", "immunoglobulin", "immunoglobulins", "complement", "inflammation",
	"inflammatory", "anti-inflammatory", "pro-inflammatory", "immune response", "immune function",
	// Endocrine system
	"endocrine", "hormone", "hormones", "hormonal", "insulin", "glucose", "glucagon", "cortisol",
	"testosterone", "estrogen", "estradiol", "progesterone", "thyroid", "thyroxine", "t3", "t4",
	"growth hormone", "gh", "igf-1", "leptin", "adiponectin", "melatonin", "circadian",
	// Metabolic system
	"metabolism", "metabolic", "glucose metabolism", "insulin resistance", "diabetes",
	"lipid", "lipids", "cholesterol", "triglyceride", "triglycerides", "fatty acid", "fatty acids",
	"protein", "proteins", "amino acid", "amino acids", "protein synthesis", "protein degradation",
	"atp", "mitochondria", "mitochondrial", "oxidative phosphorylation", "glycolysis",
	// Gene expression and molecular
	"gene expression", "gene regulation", "transcription", "transcriptional", "translation",
	"mrna", "rna", "dna", "genome", "genomic", "epigenetic", "epigenetics", "methylation",
	"histone", "histones", "chromatin", "chromosome", "chromosomes", "telomere", "telomeres",
	"protein expression", "proteome", "proteomic",
	"metabolome", "metabolomic", "transcriptome", "transcriptomic", "omics", "multi-omics",
	// Cellular and molecular processes
	"cell cycle", "apoptosis", "necrosis", "autophagy", "senescence", "differentiation",
	"proliferation", "migration", "adhesion", "signaling", "signal transduction", "pathway", "pathways",
	"receptor", "receptors", "ligand", "ligands", "enzyme", "enzymes", "kinase", "kinases",
	"phosphatase", "phosphatases", "transcription factor", "transcription factors", "tfs",
	// Organ systems
	"liver", "hepatic", "kidney", "renal", "lung", "pulmonary", "respiratory", "gastrointestinal",
	"gi tract", "intestine", "intestinal", "stomach", "gastric", "pancreas", "pancreatic",
	"spleen", "thymus", "bone marrow", "adipose", "fat", "adipocyte", "adipocytes",
	"skin", "dermal", "epidermal", "hair", "follicle", "follicles", "eye", "ocular", "retinal",
	"ear", "auditory", "equilibrium", "cochlea", "semicircular canals",
}

var upWords = []string{
	"increase", "increases", "increased", "increasing", "increment", "incremental",
	"upregulate", "upregulated", "upregulating", "upregulation", "up-regulated",
	"elevated", "elevation", "elevating", "elevate", "elevates",
	"higher", "highest", "high", "heightened", "heightening",
	"enhanced", "enhance", "enhances", "enhancing", "enhancement",
	"amplified", "amplify", "amplifies", "amplifying", "amplification",
	"boosted", "boost", "boosts", "boosting", "augmented", "augment", "augments", "augmenting",
	"promoted", "promote", "promotes", "promoting", "promotion", "stimulated", "stimulate",
	"stimulates", "stimulating", "stimulation", "activated", "activate", "activates", "activating",
	"activation", "induced", "induce", "induces", "inducing", "induction", "triggered", "trigger",
	"triggers", "triggering", "facilitated", "facilitate", "facilitates", "facilitating",
	"facilitation", "accelerated", "accelerate", "accelerates", "accelerating", "acceleration",
	"intensified", "intensify", "intensifies", "intensifying", "intensification", "strengthened",
	"strengthen", "strengthens", "strengthening", "improved", "improve",
	"improves", "improving", "improvement", "upward", "upwards", "rise", "rises", "rising",
	"surge", "surges", "surging", "spike", "spikes", "spiking", "peak", "peaks", "peaking",
}

var downWords = []string{
	"decrease", "decreases", "decreased", "decreasing", "decrement", "decremental",
	"downregulate", "downregulated", "downregulating", "downregulation", "down-regulated",
	"reduced", "reduce", "reduces", "reducing", "reduction", "reductive",
	"lower", "lowest", "low", "lowered", "lowering", "depressed", "depress", "depresses",
	"depressing", "depression", "suppressed", "suppress", "suppresses", "suppressing",
	"suppression", "inhibited", "inhibit", "inhibits", "inhibiting", "inhibition", "inhibitory",
	"blocked", "block", "blocks", "blocking", "blockade", "prevented", "prevent", "prevents",
	"preventing", "prevention", "preventive", "attenuated", "attenuate", "attenuates",
	"attenuating", "attenuation", "diminished", "diminish", "diminishes", "diminishing",
	"diminution", "declined", "decline", "declines", "declining", "deteriorated",
	"deteriorate", "deteriorates", "deteriorating", "deterioration", "impaired", "impair",
	"impairs", "impairing", "impairment", "compromised", "compromise", "compromises",
	"compromising", "weakened", "weaken", "weakens", "weakening",
	"worsened", "worse", "worsen", "worsens", "worsening", "downward", "downwards", "fall", "falls",
	"falling", "drop", "drops", "dropping", "plunge", "plunges", "plunging", "crash", "crashes",
	"crashing", "collapse", "collapses", "collapsing", "shrink", "shrinks", "shrinking",
	"contraction", "contract", "contracts", "contracting", "constriction", "constrict",
	"constricts", "constricting",
}

var mitigationWords = []string{
	"mitigate", "mitigates", "mitigated", "mitigating", "mitigation", "alleviate", "alleviates",
	"alleviated", "alleviating", "alleviation", "attenuate", "attenuates", "attenuated",
	"attenuating", "attenuation", "counteract", "counteracts", "counteracted", "counteracting",
	"counteraction", "protect", "protects", "protected", "protecting", "protection", "protective",
	"ameliorate", "ameliorates", "ameliorated", "ameliorating", "amelioration", "prevent",
	"prevents", "prevented", "preventing", "prevention", "preventive", "block", "blocks",
	"blocked", "blocking", "blockade", "inhibit", "inhibits", "inhibited", "inhibiting",
	"inhibition", "inhibitory", "suppress", "suppresses", "suppressed", "suppressing",
	"suppression", "suppressive", "resist", "resists", "resisted", "resisting", "resistance",
	"resistant", "defend", "defends", "defended", "defending", "defense", "defensive",
	"shield", "shields", "shielded", "shielding", "shelter", "shelters", "sheltered",
	"sheltering", "buffer", "buffers", "buffered", "buffering", "cushion", "cushions",
	"cushioned", "cushioning", "compensate", "compensates", "compensated", "compensating",
	"compensation", "compensatory", "restore", "restores", "restored", "restoring",
	"restoration", "restorative", "recover", "recovers", "recovered", "recovering",
	"recovery", "rehabilitate", "rehabilitates", "rehabilitated", "rehabilitating",
	"rehabilitation", "rehabilitative", "therapeutic", "therapy", "treatment", "treatments",
	"intervention", "interventions", "countermeasure", "countermeasures", "remedy", "remedies",
	"solution", "solutions", "rescue", "rescues", "rescued", "rescuing", "salvage",
	"salvages", "salvaged", "salvaging", "preserve", "preserves", "preserved", "preserving",
	"preservation", "preservative", "maintain", "maintains", "maintained", "maintaining",
	"maintenance", "sustain", "sustains", "sustained", "sustaining", "sustainability",
	"sustainable", "stabilize", "stabilizes", "stabilized", "stabilizing", "stabilization",
	"normalize", "normalizes", "normalized", "normalizing", "normalization",
}

var scientificIndicators = []string{
	"significant", "significantly", "p<", "p <", "p=", "p =",
	"statistical", "statistically", "correlation", "correlated",
	"association", "associated", "mechanism", "pathway", "regulation",
}

var quantitativeCues = []string{
	"fold", "times", "percent", "%", "ratio", "concentration", "level", "levels",
	"amount", "quantity", "dose", "doses", "mg", "ml", "μl", "ng", "μg", "mM", "μM",
}

var statisticalCues = []string{
	"p<", "p <", "p=", "p =", "significant", "statistical",
}

var outcomeCategories = []CategoryBucket{
	{Name: "musculoskeletal", Keywords: []string{"bone", "muscle", "skeletal", "osteoporosis", "sarcopenia", "tendon", "ligament", "cartilage"}},
	{Name: "cardiovascular", Keywords: []string{"cardio", "heart", "cardiac", "blood pressure", "circulation", "vascular", "endothelial"}},
	{Name: "nervous", Keywords: []string{"neuro", "brain", "neural", "cognitive", "memory", "behavior", "motor", "sensory"}},
	{Name: "immune", Keywords: []string{"immune", "lymphocyte", "cytokine", "inflammation", "antibody", "immunoglobulin"}},
	{Name: "metabolic", Keywords: []string{"metabolism", "glucose", "insulin", "lipid", "cholesterol", "protein", "mitochondria"}},
	{Name: "endocrine", Keywords: []string{"hormone", "insulin", "cortisol", "testosterone", "estrogen", "thyroid", "melatonin"}},
	{Name: "molecular", Keywords: []string{"gene expression", "transcription", "mrna", "dna", "protein expression", "epigenetic"}},
	{Name: "cellular", Keywords: []string{"cell cycle", "apoptosis", "proliferation", "differentiation", "signaling", "receptor"}},
}
