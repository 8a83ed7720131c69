package model

// Manifest is the decoded plugin manifest. Only the parts that feed stub
// generation are modelled; unknown keys are ignored by the decoders.
type Manifest struct {
	Name    string    `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Methods []*Method `json:"exportedMethods,omitempty" yaml:"exportedMethods,omitempty" toml:"exportedMethods,omitempty"`
}

// Method is an exported plugin method.
type Method struct {
	Name        string      `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	ParamTypes  []*Param    `json:"paramTypes,omitempty" yaml:"paramTypes,omitempty" toml:"paramTypes,omitempty"`
	RetType     *ReturnSpec `json:"retType,omitempty" yaml:"retType,omitempty" toml:"retType,omitempty"`
}

// Prototype is the signature of a callback passed as a parameter. It has
// the same shape as a Method.
type Prototype = Method

type Param struct {
	Name        string     `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Type        string     `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Enum        *Enum      `json:"enum,omitempty" yaml:"enum,omitempty" toml:"enum,omitempty"`
	Prototype   *Prototype `json:"prototype,omitempty" yaml:"prototype,omitempty" toml:"prototype,omitempty"`
}

type ReturnSpec struct {
	Type        string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Enum        *Enum  `json:"enum,omitempty" yaml:"enum,omitempty" toml:"enum,omitempty"`
}

type Enum struct {
	Name        string       `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Values      []*EnumValue `json:"values,omitempty" yaml:"values,omitempty" toml:"values,omitempty"`
}

type EnumValue struct {
	Name        string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Value       *Literal `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}
