package service

import (
	"badge_studio_backend/internal/model"
	"badge_studio_backend/internal/util"
	"bytes"
	"encoding/base64"
	"html"
	"strings"
	"text/template"
)

// BadgePalette 难度对应的渐变色和星级
type BadgePalette struct {
	GradientStart string
	GradientEnd   string
	Stars         int
}

var defaultPalette = BadgePalette{GradientStart: "#FF416C", GradientEnd: "#FF4B2B", Stars: 1}

var badgePalettes = map[model.Difficulty]BadgePalette{
	model.DifficultyEasy:   defaultPalette,
	model.DifficultyMedium: {GradientStart: "#F7971E", GradientEnd: "#FFD200", Stars: 2},
	model.DifficultyHard:   {GradientStart: "#8E2DE2", GradientEnd: "#4A00E0", Stars: 3},
}

// PaletteFor 未知难度回退到第一档
func PaletteFor(difficulty string) BadgePalette {
	if p, ok := badgePalettes[model.Difficulty(difficulty)]; ok {
		return p
	}
	return defaultPalette
}

var badgeTemplate = template.Must(template.New("badge").Parse(`<svg width="400" height="400" viewBox="0 0 400 400" xmlns="http://www.w3.org/2000/svg">
    <defs>
        <linearGradient id="badgeGradient" x1="0%" y1="0%" x2="100%" y2="100%">
            <stop offset="0%" style="stop-color:{{.Start}};stop-opacity:1" />
            <stop offset="100%" style="stop-color:{{.End}};stop-opacity:1" />
        </linearGradient>
        <filter id="shadow" x="-20%" y="-20%" width="140%" height="140%">
            <feDropShadow dx="0" dy="4" stdDeviation="8" flood-color="rgba(0,0,0,0.2)"/>
        </filter>
    </defs>
    <circle cx="200" cy="200" r="180" fill="url(#badgeGradient)" filter="url(#shadow)"/>
    <circle cx="200" cy="200" r="150" fill="rgba(255,255,255,0.1)" stroke="rgba(255,255,255,0.3)" stroke-width="2"/>
    <text x="200" y="120" font-family="Inter, sans-serif" font-size="24" font-weight="bold" fill="white" text-anchor="middle">BRANDING</text>
    <text x="200" y="145" font-family="Inter, sans-serif" font-size="24" font-weight="bold" fill="white" text-anchor="middle">PIONEERS</text>
    <text x="200" y="180" font-family="Inter, sans-serif" font-size="14" fill="white" text-anchor="middle">{{.BadgeText}}</text>
    <text x="200" y="220" font-family="Inter, sans-serif" font-size="18" font-weight="600" fill="white" text-anchor="middle">{{.EmployeeName}}</text>
    <text x="200" y="260" font-family="Inter, sans-serif" font-size="12" fill="rgba(255,255,255,0.9)" text-anchor="middle">Learning Champion</text>
    <text x="200" y="300" font-family="Inter, sans-serif" font-size="20" fill="white" text-anchor="middle">{{.Stars}}</text>
    <circle cx="200" cy="325" r="3" fill="white" opacity="0.8"/>
    <circle cx="180" cy="325" r="2" fill="white" opacity="0.6"/>
    <circle cx="220" cy="325" r="2" fill="white" opacity="0.6"/>
</svg>
`))

type badgeView struct {
	Start        string
	End          string
	BadgeText    string
	EmployeeName string
	Stars        string
}

// RenderBadgeSVG 相同输入总是产生相同输出
func RenderBadgeSVG(employeeName, badgeText, difficulty string) string {
	p := PaletteFor(difficulty)

	var buf bytes.Buffer
	// 模板与数据都是固定结构，执行不会失败
	_ = badgeTemplate.Execute(&buf, badgeView{
		Start:        p.GradientStart,
		End:          p.GradientEnd,
		BadgeText:    html.EscapeString(badgeText),
		EmployeeName: html.EscapeString(employeeName),
		Stars:        strings.Repeat("★", p.Stars),
	})
	return buf.String()
}

func BadgeDataURI(svg string) string {
	return util.SVGDataURIPrefix + base64.StdEncoding.EncodeToString([]byte(svg))
}
