package lexicon

// Default 返回内置技能词表。生产环境建议通过 lexicon_path 配置
// 外部YAML词表，便于不改代码调整抽取策略。
func Default() *Lexicon {
	return New(map[string][]string{
		"programming": {
			"python", "java", "javascript", "c++", "c#", "ruby", "go", "php", "swift", "kotlin",
			"typescript", "scala", "rust", "perl", "r", "matlab", "bash", "shell", "powershell",
			"dart", "assembly", "vba", "fortran", "sql", "pl/sql", "t-sql", "cobol",
		},
		"frontend": {
			"html", "css", "sass", "less", "bootstrap", "tailwind", "material ui", "jquery",
			"react", "angular", "vue", "svelte", "redux", "next.js", "gatsby", "ember",
			"webpack", "babel", "electron", "pwa", "responsive design", "web components",
		},
		"backend": {
			"node.js", "express", "django", "flask", "spring", "laravel", "ruby on rails", "asp.net",
			"fastapi", "phoenix", "nestjs", "nginx", "apache", "graphql", "rest", "soap", "grpc",
		},
		"database": {
			"mysql", "postgresql", "mongodb", "oracle", "sqlite", "sql server", "redis", "cassandra",
			"elasticsearch", "couchdb", "neo4j", "dynamodb", "mariadb", "firebase", "supabase",
			"rdbms", "nosql", "db2", "snowflake", "data modeling", "etl", "data warehousing",
		},
		"cloud": {
			"aws", "azure", "gcp", "google cloud", "cloud computing", "lambda", "ec2", "s3", "rds",
			"kubernetes", "docker", "terraform", "serverless", "cloudformation", "heroku", "vercel",
			"netlify", "digital ocean", "iaas", "paas", "saas", "cloud native", "virtualization",
		},
		"devops": {
			"ci/cd", "jenkins", "github actions", "gitlab ci", "circleci", "travis ci", "ansible", "puppet",
			"chef", "kubernetes", "docker", "docker-compose", "microservices", "monitoring", "logging",
			"elk stack", "prometheus", "grafana", "sre", "infrastructure as code", "configuration management",
		},
		"ai/ml": {
			"machine learning", "deep learning", "nlp", "computer vision", "neural networks", "ai",
			"tensorflow", "pytorch", "keras", "scikit-learn", "pandas", "numpy", "scipy", "matplotlib",
			"data science", "regression", "classification", "clustering", "reinforcement learning",
			"transformers", "gpt", "bert", "llm", "generative ai", "image processing",
		},
		"mobile": {
			"android", "ios", "react native", "flutter", "swift", "kotlin", "xamarin", "ionic",
			"objective-c", "mobile development", "pwa", "app development", "ui/ux", "ar", "vr",
		},
		"tools": {
			"git", "svn", "mercurial", "jira", "confluence", "slack", "trello", "notion", "figma",
			"photoshop", "sketch", "illustrator", "adobe xd", "postman", "swagger", "visual studio",
			"vs code", "intellij", "eclipse", "jupyter", "colab", "tableau", "power bi",
		},
		"methodologies": {
			"agile", "scrum", "kanban", "waterfall", "tdd", "bdd", "ddd", "devops", "ci/cd",
			"lean", "extreme programming", "pair programming", "mvp", "safe", "sprint", "standup",
		},
	})
}
