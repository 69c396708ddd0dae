package i18n

// baseTable seeds every new Store with the common UI strings.
var baseTable = Table{
	"board": {
		English:    "Board",
		Portuguese: "Quadro",
	},
	"timeline": {
		English:    "Timeline",
		Portuguese: "Linha do Tempo",
	},
	"calendar": {
		English:    "Calendar",
		Portuguese: "Calendário",
	},
	"charts": {
		English:    "Charts",
		Portuguese: "Gráficos",
	},
	"intelligence": {
		English:    "Intelligence",
		Portuguese: "Inteligência",
	},
	"teams": {
		English:    "Teams",
		Portuguese: "Equipes",
	},
	"assistant": {
		English:    "Assistant",
		Portuguese: "Assistente",
	},
	"settings": {
		English:    "Settings",
		Portuguese: "Configurações",
	},
	"language": {
		English:    "Language",
		Portuguese: "Idioma",
	},
	"english": {
		English:    "English",
		Portuguese: "Inglês",
	},
	"portuguese": {
		English:    "Portuguese",
		Portuguese: "Português",
	},
	"theme": {
		English:    "Theme",
		Portuguese: "Tema",
	},
	"settings_saved": {
		English:    "Settings saved",
		Portuguese: "Configurações salvas",
	},
	"researchQueryRequired": {
		English:    "Enter a research question to start, e.g. /research transporte.",
		Portuguese: "Insira uma pergunta de pesquisa para iniciar, ex. /research transporte.",
	},
	"researchComplete": {
		English:    "Research complete. Report saved as",
		Portuguese: "Pesquisa concluída. Relatório salvo como",
	},
	"light": {
		English:    "Light",
		Portuguese: "Claro",
	},
	"darkPurple": {
		English:    "Dark Purple",
		Portuguese: "Roxo Escuro",
	},
	"darkTactical": {
		English:    "Tactical Dark",
		Portuguese: "Verde Escuro",
	},
	"darkHacker": {
		English:    "Hacker",
		Portuguese: "Hacker",
	},
	"search": {
		English:    "Search",
		Portuguese: "Buscar",
	},
	"searchDocuments": {
		English:    "Search documents...",
		Portuguese: "Buscar documentos...",
	},
	"send": {
		English:    "Send",
		Portuguese: "Enviar",
	},
	"typeMessage": {
		English:    "Type your message...",
		Portuguese: "Digite sua mensagem...",
	},
	"save": {
		English:    "Save",
		Portuguese: "Salvar",
	},
	"saveChanges": {
		English:    "Save Changes",
		Portuguese: "Salvar Alterações",
	},
	"all": {
		English:    "All",
		Portuguese: "Todos",
	},
	"starred": {
		English:    "Starred",
		Portuguese: "Favoritos",
	},
	"templates": {
		English:    "Templates",
		Portuguese: "Templates",
	},
	"recent": {
		English:    "Recent",
		Portuguese: "Recentes",
	},
	"titleRequired": {
		English:    "Title is required",
		Portuguese: "Título é obrigatório",
	},
	"nameRequired": {
		English:    "Name is required",
		Portuguese: "Nome é obrigatório",
	},
	"documentCreated": {
		English:    "Document created",
		Portuguese: "Documento criado",
	},
	"documentSaved": {
		English:    "Document saved",
		Portuguese: "Documento salvo",
	},
	"documentDeleted": {
		English:    "Document deleted",
		Portuguese: "Documento excluído",
	},
	"folderCreated": {
		English:    "Folder created",
		Portuguese: "Pasta criada",
	},
	"notConfigured": {
		English:    "Not configured",
		Portuguese: "Não configurado",
	},
	"results": {
		English:    "Results",
		Portuguese: "Resultados",
	},
	"sources": {
		English:    "Sources",
		Portuguese: "Fontes",
	},
}
