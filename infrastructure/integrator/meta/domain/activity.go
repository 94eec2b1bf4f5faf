package metadomain

import "encoding/json"

// Activity representa um item do endpoint /{ad-account-id}/activities.
type Activity struct {
	EventType           string          `json:"event_type"`
	EventTime           string          `json:"event_time"`
	ActorName           string          `json:"actor_name"`
	ObjectName          string          `json:"object_name"`
	ObjectType          string          `json:"object_type"`
	ObjectID            string          `json:"object_id"`
	TranslatedEventType string          `json:"translated_event_type"`
	ExtraData           json.RawMessage `json:"extra_data"`
}

// Paging é o envelope de paginação da Graph API.
type Paging struct {
	Next string `json:"next"`
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
}

// ResponseActivities é a resposta paginada do endpoint de atividades.
type ResponseActivities struct {
	Data   []Activity `json:"data"`
	Paging Paging     `json:"paging"`
}

// ExtraData é o payload de mudança embutido em uma atividade. Pode vir como
// string JSON ou como objeto; os valores old/new podem ser escalares ou
// objetos aninhados.
type ExtraData struct {
	OldValue json.RawMessage `json:"old_value"`
	NewValue json.RawMessage `json:"new_value"`
}
