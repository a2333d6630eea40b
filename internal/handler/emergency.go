package handler

// EmergencyService is the static reference block shown on every page of the
// original forum; kept on the index payload.
type EmergencyService struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

var EmergencyServices = []EmergencyService{
	{Name: "Пожарная охрана", Phone: "101"},
	{Name: "Милиция", Phone: "102"},
	{Name: "Скорая помощь", Phone: "103"},
	{Name: "Служба газа", Phone: "104"},
}
