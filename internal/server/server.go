package server

// Server объединяет HTTP-обработчики отдельных ресурсов.
type Server struct {
	PredictionServer
}

func NewServer(
	predictionServer PredictionServer,
) Server {
	return Server{
		PredictionServer: predictionServer,
	}
}
