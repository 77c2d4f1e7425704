package scanner

import (
	"path/filepath"
	"regexp"
	"strings"
)

var composeFiles = []string{
	"docker-compose.yml",
	"docker-compose.yaml",
	"compose.yml",
	"compose.yaml",
}

var prodComposeFiles = []string{
	"docker-compose.prod.yml",
	"docker-compose.prod.yaml",
	"docker-compose.production.yml",
}

var (
	composeServiceRe = regexp.MustCompile(`^  \w`)
	composePortRe    = regexp.MustCompile(`["']?(\d+):(\d+)["']?`)
)

// ComposeFragment is the part of DockerProfile extracted from compose text.
type ComposeFragment struct {
	Services []string
	Ports    []string
}

// ParseCompose extracts service names and host:container port pairs from
// compose file text. It is a line heuristic, not a YAML parser: any
// digits:digits pair seen after a service header is taken as a port of that
// service, so numeric pairs that are not ports are reported too.
func ParseCompose(text string) ComposeFragment {
	frag := ComposeFragment{Services: []string{}, Ports: []string{}}

	inServices := false
	current := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		stripped := strings.TrimSpace(line)

		if line == "services:" {
			inServices = true
			continue
		}
		if !inServices {
			continue
		}

		if composeServiceRe.MatchString(line) && strings.HasSuffix(stripped, ":") && !strings.HasPrefix(stripped, "-") {
			current = strings.TrimSuffix(stripped, ":")
			frag.Services = appendUnique(frag.Services, current)
			continue
		}

		if current == "" {
			continue
		}
		if m := composePortRe.FindStringSubmatch(stripped); m != nil {
			frag.Ports = appendUnique(frag.Ports, current+": "+m[1]+":"+m[2])
		}
	}
	return frag
}

// scanDocker probes the Dockerfile and compose files. A compose file marks
// HasCompose even when nothing could be extracted from it.
func scanDocker(root string, p *Profile) error {
	if fileExists(filepath.Join(root, "Dockerfile")) {
		p.Docker.HasDocker = true
		p.AddTech("Docker")
	}

	if firstFile(root, prodComposeFiles) != "" {
		p.Docker.HasProdCompose = true
	}

	path := firstFile(root, composeFiles)
	if path == "" {
		return nil
	}
	p.Docker.HasCompose = true

	text, err := readText(path)
	if err != nil {
		return ignoreMissing(err)
	}
	frag := ParseCompose(text)
	for _, s := range frag.Services {
		p.Docker.Services = appendUnique(p.Docker.Services, s)
	}
	for _, port := range frag.Ports {
		p.Docker.Ports = appendUnique(p.Docker.Ports, port)
	}
	return nil
}
