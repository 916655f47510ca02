package constants

// Finalidades de tratamento de dados exigidas no cadastro (LGPD).
// A ordem importa: os registros de consentimento são gravados nessa sequência.
var ConsentPurposes = []string{
	"Sistema de gestão da igreja",
	"Comunicação entre membros",
	"Relatórios e estatísticas",
	"Cobrança de mensalidades",
}

// Tipos de solicitação de dados do titular (LGPD art. 18)
const (
	DataRequestAccess        = "access"
	DataRequestDeletion      = "deletion"
	DataRequestPortability   = "portability"
	DataRequestRectification = "rectification"
)

var DataRequestTypes = []string{
	DataRequestAccess,
	DataRequestDeletion,
	DataRequestPortability,
	DataRequestRectification,
}
