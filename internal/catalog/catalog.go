// Package catalog is the fixed content of the portfolio: navigation,
// profile, projects and skills. Accessors return copies.
package catalog

// Tab is a navigation entry.
type Tab struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Link is an external profile link.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

// Profile is the owner's presentation.
type Profile struct {
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Headline string   `json:"headline"`
	Greeting string   `json:"greeting"`
	About    []string `json:"about"`
	Avatar   string   `json:"avatar"`
	Hero     string   `json:"hero"`
	CV       string   `json:"cv"`
	Email    string   `json:"email"`
	Links    []Link   `json:"links"`
}

// Project is a portfolio entry.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tech        []string `json:"tech"`
	Link        string   `json:"link"`
	GitHub      string   `json:"github"`
	Preview     string   `json:"preview"`
}

// Skill is one item of a skill group.
type Skill struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// SkillGroup is a category of skills, kept in display order.
type SkillGroup struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

// Catalog bundles everything for JSON output.
type Catalog struct {
	Tabs     []Tab        `json:"tabs"`
	Profile  Profile      `json:"profile"`
	Projects []Project    `json:"projects"`
	Skills   []SkillGroup `json:"skills"`
}

const placeholderImage = "https://images.unsplash.com/photo-1498050108023-c5249f4df085?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=1172&q=80"

var tabs = []Tab{
	{ID: "home", Label: "Home", Icon: "home"},
	{ID: "about", Label: "Sobre Mim", Icon: "user"},
	{ID: "projects", Label: "Projetos", Icon: "folder-git"},
	{ID: "contact", Label: "Contato", Icon: "message-square"},
}

var profile = Profile{
	Name:     "Kauhan Hernandes",
	Role:     "Desenvolvedor Full Stack",
	Headline: "Transformando ideias em código e criando experiências digitais memoráveis.",
	Greeting: "Olá!",
	About: []string{
		"Experiência acadêmicas referente a listas de exercícios mas, e estou constantemente buscando novas formas de expandir meu conhecimento e me desafiar. Estou pronto para contribuir, dedicação e criatividade para projetos que exijam soluções inovadoras e focadas em resultados.",
		"Estou em busca de oportunidades que me permitam crescer profissionalmente, ganhando experiência prática e desenvolvendo minhas habilidades. Se você precisa de alguém motivado e comprometido, estou à disposição para colaborar em seu projeto.",
	},
	Avatar: "/imgs/home/avatar.jpg",
	Hero:   placeholderImage,
	CV:     "/imgs/curriculum/Curriculo Kauhan Hernandes.pdf",
	Email:  "kauhanhernandes@gmail.com",
	Links: []Link{
		{Label: "GitHub", URL: "https://github.com/kauhanhernandes", Icon: "github"},
		{Label: "LinkedIn", URL: "https://www.linkedin.com/in/kauhanhernandes/", Icon: "linkedin"},
	},
}

var projects = []Project{
	{
		Title:       "Meu Portfílio",
		Description: "Meu portfólio pessoal.",
		Image:       "/imgs/home/porflio.png",
		Tech:        []string{"TypeScript", "React", "Vite", "Tailwind CSS", "HTML/CSS/JavaScript", "EmailJs"},
		Link:        "https://kauhan-dev.vercel.app/",
		GitHub:      "#",
		Preview:     "https://kauhan-dev.vercel.app/",
	},
	{
		Title:       "Portfólio Nutricionista",
		Description: "Este é um projeto de site pessoal para a nutricionista Maria Evellyn, destacando suas especializações em nutrição materno-infantil, terapia alimentar e nutrição escolar.",
		Image:       "/imgs/home/nutri1.png",
		Tech:        []string{"TypeScript", "React", "Vite", "Tailwind CSS", "HTML/CSS/JavaScript", "Aos"},
		Link:        "https://nutrievellyn.vercel.app/",
		GitHub:      "#",
		Preview:     "https://nutrievellyn.vercel.app/",
	},
	{
		Title:       "Sistema de cadastramento",
		Description: "Aplicação Web para cadastramento de empresas com todas as informações possíveis.",
		Image:       "/imgs/home/cadastr.png",
		Tech:        []string{"TypeScript", "React", "Vite", "Tailwind CSS", "HTML/CSS/JavaScript"},
		Link:        "https://sistema-cadastramento.vercel.app/",
		GitHub:      "#",
		Preview:     "https://sistema-cadastramento.vercel.app/",
	},
}

var skills = []SkillGroup{
	{Category: "frontend", Skills: []Skill{
		{Name: "HTML", Icon: "🌐"},
		{Name: "CSS", Icon: "🎨"},
		{Name: "JavaScript", Icon: "📜"},
		{Name: "TypeScript", Icon: "💪"},
		{Name: "Bootstrap", Icon: "🅱️"},
		{Name: "Tailwind CSS", Icon: "🌊"},
	}},
	{Category: "backend", Skills: []Skill{
		{Name: "Node.js", Icon: "🟢"},
		{Name: "PHP", Icon: "🐘"},
		{Name: "SQL", Icon: "📊"},
		{Name: "PostgreSQL", Icon: "🗄️"},
	}},
	{Category: "frameworks", Skills: []Skill{
		{Name: "React.js", Icon: "⚛️"},
		{Name: "Next.js", Icon: "▲"},
		{Name: "Laravel", Icon: "🔥"},
		{Name: "Vite", Icon: "⚡"},
	}},
	{Category: "others", Skills: []Skill{
		{Name: "Git", Icon: "📚"},
		{Name: "Docker Básico", Icon: "🐳"},
		{Name: "UI/UX", Icon: "🎨"},
	}},
}

func Tabs() []Tab {
	return append([]Tab(nil), tabs...)
}

func GetProfile() Profile {
	p := profile
	p.About = append([]string(nil), profile.About...)
	p.Links = append([]Link(nil), profile.Links...)
	return p
}

func Projects() []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		p.Tech = append([]string(nil), p.Tech...)
		out[i] = p
	}
	return out
}

func Skills() []SkillGroup {
	out := make([]SkillGroup, len(skills))
	for i, g := range skills {
		g.Skills = append([]Skill(nil), g.Skills...)
		out[i] = g
	}
	return out
}

// All returns the whole catalog.
func All() Catalog {
	return Catalog{
		Tabs:     Tabs(),
		Profile:  GetProfile(),
		Projects: Projects(),
		Skills:   Skills(),
	}
}
