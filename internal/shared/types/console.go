package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle
	Area() AreaHandle

	CreateTable() TableInterface
	RenderBarChart(chart ChartData) string
	Box(title, content string) string
}

// PromptInterface define as interações que exigem uma resposta do usuário.
type PromptInterface interface {
	Confirm(question string) (bool, error)
	TextInput(label, defaultValue string) (string, error)
	Password(label string) (string, error)
	Select(label string, options []string) (string, error)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// AreaHandle é uma região do terminal redesenhada a cada atualização.
type AreaHandle interface {
	Update(content string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// ChartData é o dataset de um gráfico: rótulos e valores na mesma ordem.
type ChartData struct {
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}
