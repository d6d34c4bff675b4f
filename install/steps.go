package install

// Step is one package-manager command run by the installer.
type Step struct {
	// Command is a shell command line.
	Command string `yaml:"command"`
	// Description is shown in progress lines and in the failure summary.
	Description string `yaml:"description"`
}

// DefaultSteps is the ordered list of installation steps.
//
// Requirement specifiers containing shell metacharacters are quoted:
// unquoted, `keras>=3.0.0` would redirect pip's output to a file named
// "=3.0.0" and `jax[cpu]` is subject to globbing.
var DefaultSteps = []Step{
	{Command: "pip install --upgrade pip", Description: "Upgrading pip"},
	{Command: `pip install -U "keras>=3.0.0"`, Description: "Installing Keras 3"},
	{Command: "pip install -U keras-hub", Description: "Installing Keras Hub"},
	{Command: `pip install "jax[cpu]"`, Description: "Installing JAX (CPU)"},
	{Command: "pip install google-generativeai", Description: "Installing Google Generative AI"},
	{Command: "pip install python-dotenv", Description: "Installing python-dotenv"},
	{Command: "pip install numpy pandas matplotlib", Description: "Installing data science packages"},
	{Command: "pip install jupyter ipykernel", Description: "Installing Jupyter"},
}
