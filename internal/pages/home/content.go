package home

import (
	"bytes"
	"context"
)

// Literal copy rendered by Page. The markup in home.templ carries the same
// values inline; keep both in sync.
const (
	Title          = "Vocamate"
	Description    = "Open-source voice/agent starter. Python core (ASR/TTS/LLM) + this minimal Next.js site for docs/demo on Vercel."
	HealthPath     = "/api/ping"
	HealthLabel    = "API health (site)"
	RepoURL        = "https://github.com/developerplugin/vocomate"
	RepoLabel      = "GitHub Repo"
	RunHeading     = "Run the Python App"
	InstallCommand = "pip install -r requirements.txt"
	ServeCommand   = "uvicorn vocomate_app.main:app --reload"
	LocalHealthURL = "http://localhost:8000/health"

	// ContainerStyle is the inline style of the outer <main>.
	ContainerStyle = "padding:24px;max-width:720px"
)

// RunCommands is the text of the <pre> block.
const RunCommands = InstallCommand + "\n" + ServeCommand

// Render writes the home fragment into a fresh buffer.
func Render(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := Page().Render(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
