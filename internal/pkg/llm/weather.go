package llm

// WeatherInsight 天气提示。引擎未接入天气数据源，返回静态模板，
// 属于算法核心之外的占位能力
type WeatherInsight struct {
	Location       string `json:"location"`
	CurrentWeather string `json:"current_weather"`
	Recommendation string `json:"recommendation"`
	PackingTip     string `json:"packing_tip"`
}

func WeatherInsights(location string) *WeatherInsight {
	return &WeatherInsight{
		Location:       location,
		CurrentWeather: "Sunny, 25°C",
		Recommendation: "Perfect weather for outdoor activities!",
		PackingTip:     "Bring sunscreen and light clothing.",
	}
}
