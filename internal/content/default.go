package content

const (
	bio = `Passionate about cybersecurity, cybercrime investigation, artificial intelligence,
networking, and cloud computing. I build secure, intelligent systems and investigate
threats with a curious, engineering mindset.`

	sceneURL = "https://prod.spline.design/VJLoxp84lCdVfdZu/scene.splinecode"
)

// Default returns the built-in portfolio. Each call returns a fresh copy.
func Default() *Portfolio {
	return &Portfolio{
		Profile: Profile{
			Name:           "Nirmal",
			Brand:          "Nirmal • Portfolio",
			Badge:          "MCA Graduate • Cybersecurity • AI • Cloud",
			Headline:       "Hi, I'm Nirmal",
			Bio:            bio,
			AboutTitle:     "About Me",
			AboutSummary:   "MCA graduate focused on defensive and offensive security, AI-driven analysis, and modern infrastructure.",
			ContactTitle:   "Let’s build something secure and smart",
			ContactSummary: "Open to internships, security engineering roles, and research collaborations.",
			Email:          "pawarnirmal55@gmail.com",
			SceneURL:       sceneURL,
		},
		Nav: []NavLink{
			{Href: "#about", Label: "About"},
			{Href: "#skills", Label: "Skills"},
			{Href: "#projects", Label: "Projects"},
			{Href: "#certs", Label: "Certifications"},
			{Href: "#contact", Label: "Contact"},
		},
		Socials: []SocialLink{
			{Name: "github", Label: "GitHub", Icon: "github", URL: "https://github.com/"},
			{Name: "linkedin", Label: "LinkedIn", Icon: "linkedin", URL: "https://linkedin.com/"},
		},
		Pills: []Pill{
			{Icon: "lock", Label: "Cybersecurity"},
			{Icon: "bug", Label: "Investigation"},
			{Icon: "brain", Label: "AI"},
			{Icon: "network", Label: "Networking"},
			{Icon: "cloud", Label: "Cloud"},
		},
		Features: []Feature{
			{Icon: "lock", Title: "Security-first mindset", Desc: "Threat modeling, secure coding, and continuous assessment across the stack."},
			{Icon: "brain", Title: "AI x Security", Desc: "Leveraging ML for anomaly detection, threat triage, and incident response automation."},
			{Icon: "cloud", Title: "Cloud-native", Desc: "Designing resilient, scalable architectures with identity, secrets, and zero trust in mind."},
		},
		Skills: []SkillGroup{
			{Title: "Security", Items: []string{"Threat Modeling", "Vulnerability Assessment", "OSINT", "SIEM", "Endpoint Hardening"}},
			{Title: "AI & Data", Items: []string{"Python", "Scikit-learn", "LLMs", "Anomaly Detection", "Data Pipelines"}},
			{Title: "Networking", Items: []string{"TCP/IP", "Firewalls", "IDS/IPS", "Wireshark", "Routing & Switching"}},
			{Title: "Cloud & DevOps", Items: []string{"AWS", "Azure", "Docker", "Kubernetes", "CI/CD"}},
			{Title: "Languages", Items: []string{"Python", "JavaScript", "Bash", "SQL"}},
		},
		Projects: []Project{
			{
				Slug:  "phishing-detection-dashboard",
				Title: "Phishing Detection Dashboard",
				Tags:  []string{"AI", "Security", "Python"},
				Desc:  "ML-powered classification of phishing URLs with explainable insights and live feeds.",
				Link:  "#",
			},
			{
				Slug:  "cloud-honeypot-network",
				Title: "Cloud Honeypot Network",
				Tags:  []string{"Cloud", "Networking", "Threat Intel"},
				Desc:  "Deployed distributed honeypots with automated IOC collection and alerting.",
				Link:  "#",
			},
			{
				Slug:  "osint-case-toolkit",
				Title: "OSINT Case Toolkit",
				Tags:  []string{"Investigation", "Automation"},
				Desc:  "Workflow toolkit to aggregate open-source intel for cybercrime investigations.",
				Link:  "#",
			},
		},
		Certifications: []Certification{
			{Name: "Certified Ethical Hacker (CEH) — 1st Place", Issuer: "EC-Council", Year: "2024", Badge: "1st Place"},
			{Name: "Cisco CCNA (in-progress/interest)", Issuer: "Cisco", Year: "2025"},
			{Name: "AWS Cloud Practitioner", Issuer: "Amazon Web Services", Year: "2024"},
			{Name: "Google Cybersecurity Fundamentals", Issuer: "Google", Year: "2024"},
		},
	}
}
