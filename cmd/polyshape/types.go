package main

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results"`
	Error   string `json:"error,omitempty"`
}

// CLIArea is one printed area.
type CLIArea struct {
	Index   int     `json:"index"`
	Area    float64 `json:"area"`
	Display string  `json:"display"`
}

// CLIExample groups the areas printed by one example.
type CLIExample struct {
	Example string    `json:"example"`
	Areas   []CLIArea `json:"areas"`
}

// CLIOpResult is one erased callable applied to (3, 4).
type CLIOpResult struct {
	Name   string `json:"name"`
	Result int    `json:"result"`
}

// CLIBenchResult is one dispatch strategy's measurement.
type CLIBenchResult struct {
	Name       string  `json:"name"`
	Iterations int     `json:"iterations"`
	NsPerOp    int64   `json:"ns_per_op"`
	TotalArea  float64 `json:"total_area"`
}

// CLIConformance is a type found to carry the inspected capability.
type CLIConformance struct {
	Type            string `json:"type"`
	Package         string `json:"package"`
	TypeFile        string `json:"type_file"`
	TypeLine        int    `json:"type_line"`
	MethodFile      string `json:"method_file"`
	MethodLine      int    `json:"method_line"`
	PointerReceiver bool   `json:"pointer_receiver"`
	Underlying      string `json:"underlying"`
	Retrofitted     bool   `json:"retrofitted"`
	Detached        bool   `json:"detached"`
}
