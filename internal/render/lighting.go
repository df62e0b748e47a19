package render

import rl "github.com/gen2brain/raylib-go/raylib"

// defaultAmbient keeps faces turned away from the light from going pure black.
var defaultAmbient = [4]float32{0.2, 0.22, 0.26, 1.0}

// defaultLightDir points from the scene toward the light (above-right).
var defaultLightDir = [3]float32{0.5, 1, 0.5}

const (
	defaultLightIntensity   = float32(0.75)
	defaultSpecularPower    = float32(48.0)
	defaultSpecularStrength = float32(0.35)
)

// Lighting owns the lit shader every model is drawn with and the per-frame uniforms
// it needs. The shader must be created after the window exists.
type Lighting struct {
	shader   rl.Shader
	ViewPos  [3]float32
	LightDir [3]float32
	Color    [4]float32 // RGBA 0..1; alpha scales intensity
}

// NewLighting compiles the lit shader. If compilation fails the returned Lighting
// still works; models keep raylib's default shader.
func NewLighting() *Lighting {
	return &Lighting{
		shader:   rl.LoadShaderFromMemory(litVS, litFS),
		LightDir: defaultLightDir,
		Color:    [4]float32{1, 1, 1, 1},
	}
}

// Valid reports whether the lit shader compiled.
func (l *Lighting) Valid() bool {
	return l != nil && rl.IsShaderValid(l.shader)
}

// Shader returns the lit shader.
func (l *Lighting) Shader() rl.Shader { return l.shader }

// Apply uploads this frame's uniforms. Call once per frame before drawing models.
// Uniform slices are local copies so nothing Go-owned escapes into cgo.
func (l *Lighting) Apply() {
	if !l.Valid() {
		return
	}
	viewPos := [3]float32{l.ViewPos[0], l.ViewPos[1], l.ViewPos[2]}
	lightDir := [3]float32{l.LightDir[0], l.LightDir[1], l.LightDir[2]}
	amb := defaultAmbient
	color := [4]float32{l.Color[0], l.Color[1], l.Color[2], l.Color[3]}
	if loc := rl.GetShaderLocation(l.shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(l.shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(l.shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(l.shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(l.shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(l.shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(l.shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(l.shader, loc, color[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(l.shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(l.shader, loc, []float32{defaultLightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(l.shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(l.shader, loc, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(l.shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(l.shader, loc, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
}

// Unload releases the shader. Models still referencing it must be unloaded first.
func (l *Lighting) Unload() {
	if l.Valid() {
		rl.UnloadShader(l.shader)
	}
	l.shader = rl.Shader{}
}

// The fragment shader samples the albedo map so textured glTF/OBJ materials keep
// their textures; untextured materials get raylib's 1x1 white default.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec4 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 light = lightColor.rgb * lightColor.a;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * light * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = light * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)
